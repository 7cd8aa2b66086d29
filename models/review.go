package models

import "time"

// Review is embedded in products and workshops.
type Review struct {
	UserID    string    `bson:"userid" json:"userId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdat" json:"createdAt"`
}

// AverageRating is the arithmetic mean of all embedded ratings, recomputed in
// full on every append. Review lists stay small.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	total := 0
	for _, rev := range reviews {
		total += rev.Rating
	}
	return float64(total) / float64(len(reviews))
}
