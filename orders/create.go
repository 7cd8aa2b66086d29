package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"craftnest/db"
	"craftnest/models"
	"craftnest/mq"
	"craftnest/utils"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

var (
	ErrNoProducts      = errors.New("no products in order")
	ErrBadAddress      = errors.New("all address fields are required")
	ErrBadMethod       = errors.New("invalid payment method selected")
	ErrProductNotFound = errors.New("product not found")
)

// LineRequest is one requested {product, quantity} pair.
type LineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PlaceOrderInput feeds the single order-construction routine shared by the
// COD path and the online-payment path, so totals, sold counters and
// purchase-history bookkeeping are enforced exactly once.
type PlaceOrderInput struct {
	BuyerID           string
	Lines             []LineRequest
	Address           models.DeliveryAddress
	PaymentMethod     string
	PaymentStatus     string
	OrderStatus       string
	RazorpayOrderID   string
	RazorpayPaymentID string
	Notes             string
}

// ValidateInput applies the creation preconditions that do not need the
// database: non-empty product list, complete address, known payment method.
func ValidateInput(in PlaceOrderInput) error {
	if len(in.Lines) == 0 {
		return ErrNoProducts
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return ErrNoProducts
		}
	}
	if err := validate.Struct(in.Address); err != nil {
		return ErrBadAddress
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return ErrBadMethod
	}
	return nil
}

// PlaceOrder resolves every line against the live product, snapshots
// name/price/images, accumulates the total, and persists the order, the sold
// counters and the buyer's purchase ref inside one transaction. Stock
// quantity is not decremented here; only the sold counter moves.
func PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	if err := ValidateInput(in); err != nil {
		return nil, err
	}

	if in.Address.Country == "" {
		in.Address.Country = "India"
	}

	order := &models.Order{
		OrderID:           "ORD-" + utils.GetUUID(),
		BuyerID:           in.BuyerID,
		DeliveryAddress:   in.Address,
		PaymentMethod:     in.PaymentMethod,
		PaymentStatus:     in.PaymentStatus,
		OrderStatus:       in.OrderStatus,
		RazorpayOrderID:   in.RazorpayOrderID,
		RazorpayPaymentID: in.RazorpayPaymentID,
		Notes:             in.Notes,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	var artistIDs []string

	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		order.Products = order.Products[:0]
		order.TotalAmount = 0
		artistIDs = artistIDs[:0]

		for _, line := range in.Lines {
			var product models.Product
			err := db.ProductCollection.FindOne(sc, bson.M{"productid": line.ProductID}).Decode(&product)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
			}

			images := product.Images
			if images == nil {
				images = []string{}
			}
			order.Products = append(order.Products, models.OrderLine{
				ProductID:   product.ProductID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				Price:       product.Price,
				Images:      images,
			})
			order.TotalAmount += product.Price * float64(line.Quantity)
			artistIDs = append(artistIDs, product.Artist)
		}

		if _, err := db.OrderCollection.InsertOne(sc, order); err != nil {
			return nil, err
		}

		for _, line := range order.Products {
			_, err := db.ProductCollection.UpdateOne(sc,
				bson.M{"productid": line.ProductID},
				bson.M{"$inc": bson.M{"sold": line.Quantity}},
			)
			if err != nil {
				return nil, err
			}
		}

		_, err := db.UserCollection.UpdateOne(sc,
			bson.M{"userid": in.BuyerID},
			bson.M{"$push": bson.M{"purchases": order.OrderID}},
		)
		return nil, err
	})
	if err != nil {
		return nil, err
	}

	go mq.Emit(context.Background(), "order-placed", mq.Index{EntityType: "order", EntityId: order.OrderID, Method: "POST"})
	LiveFeed.NotifyOrderPlaced(artistIDs, order)

	return order, nil
}

// POST /api/orders — buyer only (enforced in routes). COD and other offline
// methods land here; orders start Placed/Pending and COD never transitions
// automatically afterward.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var body struct {
		Products        []LineRequest          `json:"products"`
		DeliveryAddress models.DeliveryAddress `json:"deliveryAddress"`
		PaymentMethod   string                 `json:"paymentMethod"`
		Notes           string                 `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	order, err := PlaceOrder(ctx, PlaceOrderInput{
		BuyerID:       userID,
		Lines:         body.Products,
		Address:       body.DeliveryAddress,
		PaymentMethod: body.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		OrderStatus:   models.OrderPlaced,
		Notes:         body.Notes,
	})
	if err != nil {
		RespondPlaceOrderError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Order placed successfully with %s!", order.PaymentMethod),
		"order":   order,
	})
}

func RespondPlaceOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoProducts), errors.Is(err, ErrBadAddress), errors.Is(err, ErrBadMethod):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrProductNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create order")
	}
}
