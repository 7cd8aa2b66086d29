package workshops

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultMaxParticipants = 30

// POST /api/workshops — artisan only (enforced in routes).
func CreateWorkshop(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var workshop models.Workshop
	if err := json.NewDecoder(r.Body).Decode(&workshop); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if workshop.Title == "" || workshop.Description == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Title and description are required")
		return
	}
	if !models.WorkshopCategories[workshop.Category] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category")
		return
	}
	if workshop.Level == "" {
		workshop.Level = "Beginner"
	}
	if !models.WorkshopLevels[workshop.Level] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid level")
		return
	}
	if workshop.MaxParticipants <= 0 {
		workshop.MaxParticipants = defaultMaxParticipants
	}

	workshop.WorkshopID = "w" + utils.GenerateRandomString(12)
	workshop.Artisan = userID
	workshop.CurrentParticipants = 0
	workshop.Enrolled = []string{}
	workshop.Reviews = []models.Review{}
	workshop.AverageRating = 0
	if workshop.Images == nil {
		workshop.Images = []string{}
	}
	workshop.CreatedAt = time.Now()

	if _, err := db.WorkshopCollection.InsertOne(ctx, workshop); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create workshop")
		return
	}

	_, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$push": bson.M{"workshops": workshop.WorkshopID}},
	)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update artisan profile")
		return
	}

	go mq.Emit(context.Background(), "workshop-created", mq.Index{EntityType: "workshop", EntityId: workshop.WorkshopID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, workshop)
}

// GET /api/workshops with category/level/search filters.
func GetWorkshops(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := bson.M{}

	if category := q.Get("category"); category != "" {
		filter["category"] = category
	}
	if level := q.Get("level"); level != "" {
		filter["level"] = level
	}
	if search := q.Get("search"); search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": regex}},
			{"description": bson.M{"$regex": regex}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})

	cursor, err := db.WorkshopCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch workshops")
		return
	}
	defer cursor.Close(ctx)

	var items []models.Workshop
	if err := cursor.All(ctx, &items); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode workshops")
		return
	}
	if len(items) == 0 {
		items = []models.Workshop{}
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GET /api/workshops/:workshopId
func GetWorkshop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var workshop models.Workshop
	err := db.WorkshopCollection.FindOne(r.Context(), bson.M{"workshopid": ps.ByName("workshopId")}).Decode(&workshop)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Workshop not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, workshop)
}

// DELETE /api/workshops/:workshopId — owner only.
func DeleteWorkshop(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	workshopID := ps.ByName("workshopId")
	userID := utils.GetUserIDFromRequest(r)

	var workshop models.Workshop
	if err := db.WorkshopCollection.FindOne(ctx, bson.M{"workshopid": workshopID}).Decode(&workshop); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Workshop not found")
		return
	}
	if workshop.Artisan != userID && utils.GetRoleFromRequest(r) != models.RoleAdmin {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	if _, err := db.WorkshopCollection.DeleteOne(ctx, bson.M{"workshopid": workshopID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete workshop")
		return
	}

	_, _ = db.UserCollection.UpdateOne(ctx,
		bson.M{"userid": workshop.Artisan},
		bson.M{"$pull": bson.M{"workshops": workshopID}},
	)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Workshop deleted"})
}

// POST /api/workshops/:workshopId/reviews
func AddReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	workshopID := ps.ByName("workshopId")
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Rating < 1 || input.Rating > 5 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid review data")
		return
	}

	var workshop models.Workshop
	if err := db.WorkshopCollection.FindOne(ctx, bson.M{"workshopid": workshopID}).Decode(&workshop); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Workshop not found")
		return
	}

	review := models.Review{
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	workshop.Reviews = append(workshop.Reviews, review)
	workshop.AverageRating = models.AverageRating(workshop.Reviews)

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"averagerating": workshop.AverageRating},
	}
	if _, err := db.WorkshopCollection.UpdateOne(ctx, bson.M{"workshopid": workshopID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save review")
		return
	}

	go mq.Emit(context.Background(), "review-added", mq.Index{EntityType: "review", ItemType: "workshop", ItemId: workshopID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, workshop)
}
