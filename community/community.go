package community

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"craftnest/db"
	"craftnest/models"
	"craftnest/mq"
	"craftnest/rdx"
	"craftnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// POST /api/community
func CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var post models.CommunityPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if post.Content == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Content is required")
		return
	}
	if post.Type == "" {
		post.Type = "story"
	}
	if !models.PostTypes[post.Type] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post type")
		return
	}

	post.PostID = "cp" + utils.GenerateRandomString(12)
	post.Author = userID
	if name, err := rdx.RdxGet("users:" + userID); err == nil {
		post.AuthorName = name
	}
	if post.Images == nil {
		post.Images = []string{}
	}
	post.Likes = []string{}
	post.Comments = []models.PostComment{}
	post.ViewCount = 0
	post.CreatedAt = time.Now()

	if _, err := db.PostsCollection.InsertOne(ctx, post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create post")
		return
	}

	go mq.Emit(context.Background(), "post-created", mq.Index{EntityType: "post", EntityId: post.PostID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusCreated, post)
}

// GET /api/community with type/category/search filters.
func GetPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	q := r.URL.Query()
	filter := bson.M{}

	if postType := q.Get("type"); postType != "" {
		filter["type"] = postType
	}
	if category := q.Get("category"); category != "" {
		filter["category"] = category
	}
	if search := q.Get("search"); search != "" {
		regex := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": regex}},
			{"content": bson.M{"$regex": regex}},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdat", Value: -1}})

	cursor, err := db.PostsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}
	defer cursor.Close(ctx)

	var posts []models.CommunityPost
	if err := cursor.All(ctx, &posts); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode posts")
		return
	}
	if len(posts) == 0 {
		posts = []models.CommunityPost{}
	}

	utils.RespondWithJSON(w, http.StatusOK, posts)
}

// GET /api/community/:postId — bumps the view counter atomically. Auth is
// optional; a signed-in viewer also learns whether they liked the post.
func GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	res := db.PostsCollection.FindOneAndUpdate(ctx,
		bson.M{"postid": ps.ByName("postId")},
		bson.M{"$inc": bson.M{"viewcount": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var post models.CommunityPost
	if err := res.Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	if viewerID := utils.GetUserIDFromRequest(r); viewerID != "" {
		for _, likedBy := range post.Likes {
			if likedBy == viewerID {
				post.LikedByMe = true
				break
			}
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// POST /api/community/:postId/like — toggles the caller in the likes set.
func LikePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	postID := ps.ByName("postId")
	userID := utils.GetUserIDFromRequest(r)

	var post models.CommunityPost
	if err := db.PostsCollection.FindOne(ctx, bson.M{"postid": postID}).Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	update := bson.M{"$addToSet": bson.M{"likes": userID}}
	for _, likedBy := range post.Likes {
		if likedBy == userID {
			update = bson.M{"$pull": bson.M{"likes": userID}}
			break
		}
	}

	res := db.PostsCollection.FindOneAndUpdate(ctx,
		bson.M{"postid": postID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := res.Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update likes")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}

// POST /api/community/:postId/comment
func AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	postID := ps.ByName("postId")
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Comment == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Comment is required")
		return
	}

	comment := models.PostComment{
		UserID:    userID,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
		Likes:     0,
	}

	res := db.PostsCollection.FindOneAndUpdate(ctx,
		bson.M{"postid": postID},
		bson.M{"$push": bson.M{"comments": comment}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var post models.CommunityPost
	if err := res.Decode(&post); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, post)
}
