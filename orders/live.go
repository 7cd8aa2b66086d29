package orders

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"craftnest/models"
	"craftnest/utils"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // locked down by the auth middleware in front
	},
}

// Hub fans order events out to connected artisan sockets, keyed by user id.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]bool
}

var LiveFeed = NewHub()

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]bool),
	}
}

// GET /ws/orders — websocket; artisan only (enforced in routes).
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Could not open WebSocket connection", http.StatusBadRequest)
		return
	}

	h.mu.Lock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]bool)
	}
	h.clients[userID][conn] = true
	h.mu.Unlock()

	// Drain reads so close frames are noticed; nothing inbound matters.
	go func() {
		defer h.drop(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) drop(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	if conns, ok := h.clients[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.clients, userID)
		}
	}
	h.mu.Unlock()
	conn.Close()
}

// NotifyOrderPlaced tells every artisan with a product in the order that it
// was placed. Best effort; dead connections are dropped.
func (h *Hub) NotifyOrderPlaced(artistIDs []string, order *models.Order) {
	payload, err := json.Marshal(map[string]any{
		"type":        "order_placed",
		"orderId":     order.OrderID,
		"totalAmount": order.TotalAmount,
		"products":    order.Products,
	})
	if err != nil {
		log.Printf("live feed: marshal failed: %v", err)
		return
	}

	seen := make(map[string]bool, len(artistIDs))
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, artistID := range artistIDs {
		if seen[artistID] {
			continue
		}
		seen[artistID] = true
		for conn := range h.clients[artistID] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				delete(h.clients[artistID], conn)
				conn.Close()
			}
		}
	}
}

// Stop closes every connection; called on server shutdown.
func (h *Hub) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, conns := range h.clients {
		for conn := range conns {
			conn.Close()
		}
		delete(h.clients, userID)
	}
}
