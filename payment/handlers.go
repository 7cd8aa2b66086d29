package payment

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"craftnest/config"
	"craftnest/models"
	"craftnest/orders"
	"craftnest/rdx"
	"craftnest/utils"

	"github.com/julienschmidt/httprouter"
)

// Service is the bridge to the external payment gateway.
type Service struct {
	gateway *Client
	keyID   string
	secret  string
}

func NewService(cfg *config.App) *Service {
	return &Service{
		gateway: NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
		keyID:   cfg.RazorpayKeyID,
		secret:  cfg.RazorpayKeySecret,
	}
}

// POST /api/payment/create-order — buyer only (enforced in routes). Converts
// the rupee amount to paise and registers a gateway order, returning its id
// and the publishable key for the client-side checkout.
func (s *Service) CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		TotalAmount float64 `json:"totalAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.TotalAmount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	receipt := fmt.Sprintf("receipt_%d", time.Now().UnixMilli())
	order, err := s.gateway.CreateOrder(ctx, ToPaise(body.TotalAmount), receipt, map[string]string{
		"userId": userID,
	})
	if err != nil {
		log.Printf("payment: create order failed for user %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create payment order")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success":         true,
		"razorpayOrderId": order.ID,
		"amount":          order.Amount,
		"currency":        order.Currency,
		"keyId":           s.keyID,
	})
}

// POST /api/payment/verify — buyer only (enforced in routes). Recomputes the
// gateway signature server-side and fails closed on mismatch; a match
// persists the order through the same routine as the COD path, with
// paymentStatus=Paid and orderStatus=Confirmed.
func (s *Service) Verify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		RazorpayOrderID   string                 `json:"razorpayOrderId"`
		RazorpayPaymentID string                 `json:"razorpayPaymentId"`
		RazorpaySignature string                 `json:"razorpaySignature"`
		Products          []orders.LineRequest   `json:"products"`
		DeliveryAddress   models.DeliveryAddress `json:"deliveryAddress"`
		PaymentMethod     string                 `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if body.RazorpayOrderID == "" || body.RazorpayPaymentID == "" || body.RazorpaySignature == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing payment verification details")
		return
	}

	if !VerifySignature(body.RazorpayOrderID, body.RazorpayPaymentID, body.RazorpaySignature, s.secret) {
		utils.RespondWithError(w, http.StatusBadRequest, "Payment signature verification failed")
		return
	}

	// A payment id may only ever create one order. Best effort: if redis is
	// down the guard is skipped rather than blocking checkout.
	if ok, err := rdx.RdxSetNX("payments:"+body.RazorpayPaymentID, userID, 24*time.Hour); err == nil && !ok {
		utils.RespondWithError(w, http.StatusConflict, "Payment already processed")
		return
	}

	if body.PaymentMethod == "" || body.PaymentMethod == "ONLINE" {
		body.PaymentMethod = models.PaymentUPI
	}

	order, err := orders.PlaceOrder(ctx, orders.PlaceOrderInput{
		BuyerID:           userID,
		Lines:             body.Products,
		Address:           body.DeliveryAddress,
		PaymentMethod:     body.PaymentMethod,
		PaymentStatus:     models.PaymentPaid,
		OrderStatus:       models.OrderConfirmed,
		RazorpayOrderID:   body.RazorpayOrderID,
		RazorpayPaymentID: body.RazorpayPaymentID,
	})
	if err != nil {
		orders.RespondPlaceOrderError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Payment verified and order created successfully",
		"orderId": order.OrderID,
	})
}
