package workshops

import (
	"context"
	"errors"
	"net/http"

	"craftnest/db"
	"craftnest/models"
	"craftnest/mq"
	"craftnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var errSeatTaken = errors.New("seat no longer available")

// POST /api/workshops/:workshopId/enroll
//
// The seat grab is a single guarded update: the filter requires both free
// capacity and non-membership, so two requests racing for the last seat
// cannot both match. The learner-side bookkeeping joins the same transaction.
func Enroll(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	workshopID := ps.ByName("workshopId")
	userID := utils.GetUserIDFromRequest(r)

	var workshop models.Workshop
	if err := db.WorkshopCollection.FindOne(ctx, bson.M{"workshopid": workshopID}).Decode(&workshop); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Workshop not found")
		return
	}

	if ok, reason := workshop.CanEnroll(userID); !ok {
		utils.RespondWithError(w, http.StatusBadRequest, reason)
		return
	}

	_, err := db.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		filter := bson.M{
			"workshopid": workshopID,
			"enrolled":   bson.M{"$ne": userID},
			"$expr":      bson.M{"$lt": []string{"$currentparticipants", "$maxparticipants"}},
		}
		update := bson.M{
			"$addToSet": bson.M{"enrolled": userID},
			"$inc":      bson.M{"currentparticipants": 1},
		}
		res, err := db.WorkshopCollection.UpdateOne(sc, filter, update)
		if err != nil {
			return nil, err
		}
		if res.ModifiedCount == 0 {
			return nil, errSeatTaken
		}

		_, err = db.UserCollection.UpdateOne(sc,
			bson.M{"userid": userID},
			bson.M{"$addToSet": bson.M{"enrolledworkshops": workshopID}},
		)
		return nil, err
	})
	if err != nil {
		if errors.Is(err, errSeatTaken) {
			utils.RespondWithError(w, http.StatusBadRequest, "Workshop is full")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to enroll")
		return
	}

	go mq.Emit(context.Background(), "workshop-enrolled", mq.Index{EntityType: "workshop", EntityId: workshopID, ItemType: "user", ItemId: userID, Method: "POST"})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Enrolled successfully"})
}
