package products

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"craftnest/db"
	"craftnest/models"
	"craftnest/mq"
	"craftnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// POST /api/products/:productId/reviews
// Appends the review and stores the recomputed mean of all embedded ratings.
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productId")
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Rating < 1 || input.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	review := models.Review{
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	product.Reviews = append(product.Reviews, review)
	product.AverageRating = models.AverageRating(product.Reviews)

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"averagerating": product.AverageRating},
	}
	if _, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": productID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	go mq.Emit(context.Background(), "review-added", mq.Index{EntityType: "review", ItemType: "product", ItemId: productID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, product)
}
