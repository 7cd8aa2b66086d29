package orders

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"craftnest/db"
	"craftnest/models"
	"craftnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/orders — role-scoped listing. Buyers see their own orders;
// artisans see orders containing any product they own; everyone else is
// denied.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	role := utils.GetRoleFromRequest(r)

	var filter bson.M
	switch role {
	case models.RoleBuyer:
		filter = bson.M{"buyerid": userID}
	case models.RoleArtisan:
		var artisan models.User
		if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&artisan); err != nil {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		filter = bson.M{"products.productid": bson.M{"$in": artisan.Products}}
	default:
		utils.RespondWithError(w, http.StatusForbidden, "Only buyers and artisans can view orders")
		return
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})
	cursor, err := db.OrderCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode orders")
		return
	}
	if len(orders) == 0 {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GET /api/orders/:orderId — owning buyer only.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": ps.ByName("orderId")}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	if order.BuyerID != userID {
		utils.RespondWithError(w, http.StatusForbidden, "You do not have access to this order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// PATCH /api/orders/:orderId/status — admin or artisan (enforced in routes).
// paymentStatus and orderStatus are independent; neither update touches the
// other, and nothing reconciles them.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	orderID := ps.ByName("orderId")

	var body struct {
		OrderStatus   string `json:"orderStatus"`
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	set := bson.M{"updatedat": time.Now()}
	if body.OrderStatus != "" {
		if !models.ValidOrderStatus(body.OrderStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid order status")
			return
		}
		set["orderstatus"] = body.OrderStatus
	}
	if body.PaymentStatus != "" {
		if !models.ValidPaymentStatus(body.PaymentStatus) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid payment status")
			return
		}
		set["paymentstatus"] = body.PaymentStatus
	}

	res := db.OrderCollection.FindOneAndUpdate(ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var order models.Order
	if err := res.Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// DELETE /api/orders/:orderId — cancel; owning buyer or admin; rejected once
// the order has shipped. paymentStatus is left untouched.
func CancelOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	orderID := ps.ByName("orderId")
	userID := utils.GetUserIDFromRequest(r)
	role := utils.GetRoleFromRequest(r)

	var order models.Order
	if err := db.OrderCollection.FindOne(ctx, bson.M{"orderid": orderID}).Decode(&order); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
		return
	}

	if order.BuyerID != userID && role != models.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "You cannot cancel this order")
		return
	}

	if !order.CanCancel() {
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot cancel shipped or delivered orders")
		return
	}

	_, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": bson.M{"orderstatus": models.OrderCancelled, "updatedat": time.Now()}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to cancel order")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Order cancelled successfully"})
}
