package users

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

// excludePassword keeps the bcrypt hash out of every public payload.
var excludePassword = options.FindOne().SetProjection(bson.M{"password": 0})

// GET /api/users/:userId
func GetProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := ps.ByName("userId")

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}, excludePassword).Decode(&user)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// PUT /api/users/:userId — owner only.
func UpdateProfile(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	userID := ps.ByName("userId")

	if utils.GetUserIDFromRequest(r) != userID {
		utils.RespondWithError(w, http.StatusForbidden, "Not authorized")
		return
	}

	var input struct {
		Name         string             `json:"name"`
		Bio          string             `json:"bio"`
		ProfileImage string             `json:"profileImage"`
		Skills       []string           `json:"skills"`
		Location     string             `json:"location"`
		WebsiteURL   string             `json:"websiteUrl"`
		SocialLinks  models.SocialLinks `json:"socialLinks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	update := bson.M{"$set": bson.M{
		"name":         input.Name,
		"bio":          input.Bio,
		"profileimage": input.ProfileImage,
		"skills":       input.Skills,
		"location":     input.Location,
		"websiteurl":   input.WebsiteURL,
		"sociallinks":  input.SocialLinks,
	}}

	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, update); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}, excludePassword).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GET /api/artisans
func ListArtisans(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "createdat", Value: -1}})

	cursor, err := db.UserCollection.Find(ctx, bson.M{"role": models.RoleArtisan}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch artisans")
		return
	}
	defer cursor.Close(ctx)

	var artisans []models.User
	if err := cursor.All(ctx, &artisans); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode artisans")
		return
	}
	if len(artisans) == 0 {
		artisans = []models.User{}
	}

	utils.RespondWithJSON(w, http.StatusOK, artisans)
}
