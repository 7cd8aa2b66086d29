package products

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"craftnest/db"
	"craftnest/models"
	"craftnest/mq"
	"craftnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/products — artisan only (enforced in routes).
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if product.Name == "" || product.Price <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Name and a positive price are required")
		return
	}
	if !models.ProductCategories[product.Category] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category")
		return
	}

	product.ProductID = "p" + utils.GenerateRandomString(12)
	product.Artist = userID
	if product.Quantity == 0 {
		product.Quantity = 1
	}
	if product.Images == nil {
		product.Images = []string{}
	}
	product.Reviews = []models.Review{}
	product.AverageRating = 0
	product.Sold = 0
	product.CreatedAt = time.Now()

	if _, err := db.ProductCollection.InsertOne(ctx, product); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	// Record ownership on the artisan's document.
	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$push": bson.M{"products": product.ProductID}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update artisan profile")
		return
	}

	go mq.Emit(context.Background(), "product-created", mq.Index{EntityType: "product", EntityId: product.ProductID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// GET /api/products with category/search/flag/price-range filters.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := bson.M{}

	if category := q.Get("category"); category != "" {
		filter["category"] = category
	}
	if q.Get("fairTrade") == "true" {
		filter["fairtradecertified"] = true
	}
	if q.Get("ecoFriendly") == "true" {
		filter["ecofriendly"] = true
	}
	if search := q.Get("search"); search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": regex}},
			{"description": bson.M{"$regex": regex}},
		}
	}
	priceFilter := bson.M{}
	if minPrice, err := strconv.ParseFloat(q.Get("minPrice"), 64); err == nil {
		priceFilter["$gte"] = minPrice
	}
	if maxPrice, err := strconv.ParseFloat(q.Get("maxPrice"), 64); err == nil {
		priceFilter["$lte"] = maxPrice
	}
	if len(priceFilter) > 0 {
		filter["price"] = priceFilter
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})

	cursor, err := db.ProductCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	defer cursor.Close(ctx)

	var items []models.Product
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode products")
		return
	}
	if len(items) == 0 {
		items = []models.Product{}
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GET /api/products/:productId
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var product models.Product
	err := db.ProductCollection.FindOne(r.Context(), bson.M{"productid": ps.ByName("productId")}).Decode(&product)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// editableProductFields maps the json keys a client may update to their bson
// field names. Ownership, bookkeeping counters and review state are absent,
// so they can never be set from a request body.
var editableProductFields = map[string]string{
	"name":               "name",
	"description":        "description",
	"category":           "category",
	"price":              "price",
	"originalPrice":      "originalprice",
	"quantity":           "quantity",
	"images":             "images",
	"materials":          "materials",
	"dimensions":         "dimensions",
	"customizable":       "customizable",
	"fairTradeCertified": "fairtradecertified",
	"ecoFriendly":        "ecofriendly",
	"artisanStory":       "artisanstory",
}

// buildProductUpdate translates a raw update body into a $set document,
// dropping anything that is not an editable field.
func buildProductUpdate(fields map[string]any) bson.M {
	set := bson.M{}
	for key, value := range fields {
		if bsonName, ok := editableProductFields[key]; ok {
			set[bsonName] = value
		}
	}
	return set
}

// PUT /api/products/:productId — owner only.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productId")
	userID := utils.GetUserIDFromRequest(r)

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if product.Artist != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	var updatedFields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&updatedFields); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid update data")
		return
	}
	set := buildProductUpdate(updatedFields)
	if len(set) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No editable fields in update")
		return
	}
	if category, ok := set["category"].(string); ok && !models.ProductCategories[category] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category")
		return
	}

	if _, err := db.ProductCollection.UpdateOne(ctx, bson.M{"productid": productID}, bson.M{"$set": set}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// DELETE /api/products/:productId — owner only.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	productID := ps.ByName("productId")
	userID := utils.GetUserIDFromRequest(r)

	var product models.Product
	if err := db.ProductCollection.FindOne(ctx, bson.M{"productid": productID}).Decode(&product); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	if product.Artist != userID && utils.GetRoleFromRequest(r) != models.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	if _, err := db.ProductCollection.DeleteOne(ctx, bson.M{"productid": productID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	_, _ = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": product.Artist},
		bson.M{"$pull": bson.M{"products": productID}},
	)

	go mq.Emit(context.Background(), "product-deleted", mq.Index{EntityType: "product", EntityId: productID, Method: "DELETE"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}
