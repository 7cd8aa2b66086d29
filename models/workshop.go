package models

import "time"

var WorkshopCategories = map[string]bool{
	"Weaving":    true,
	"Embroidery": true,
	"Dyeing":     true,
	"Knitting":   true,
	"Stitching":  true,
	"Other":      true,
}

var WorkshopLevels = map[string]bool{
	"Beginner":     true,
	"Intermediate": true,
	"Advanced":     true,
}

type Workshop struct {
	WorkshopID          string    `bson:"workshopid" json:"workshopid"`
	Title               string    `bson:"title" json:"title"`
	Description         string    `bson:"description" json:"description"`
	Artisan             string    `bson:"artisan" json:"artisan"`
	Category            string    `bson:"category" json:"category"`
	Price               float64   `bson:"price" json:"price"`
	Duration            string    `bson:"duration,omitempty" json:"duration,omitempty"`
	Level               string    `bson:"level" json:"level"`
	MaxParticipants     int       `bson:"maxparticipants" json:"maxParticipants"`
	CurrentParticipants int       `bson:"currentparticipants" json:"currentParticipants"`
	StartDate           time.Time `bson:"startdate,omitempty" json:"startDate,omitempty"`
	EndDate             time.Time `bson:"enddate,omitempty" json:"endDate,omitempty"`
	Schedule            string    `bson:"schedule,omitempty" json:"schedule,omitempty"`
	Materials           []string  `bson:"materials,omitempty" json:"materials,omitempty"`
	Images              []string  `bson:"images" json:"images"`
	VideoURL            string    `bson:"videourl,omitempty" json:"videoUrl,omitempty"`
	LearningOutcomes    []string  `bson:"learningoutcomes,omitempty" json:"learningOutcomes,omitempty"`
	Enrolled            []string  `bson:"enrolled" json:"enrolled"`
	Reviews             []Review  `bson:"reviews" json:"reviews"`
	AverageRating       float64   `bson:"averagerating" json:"averageRating"`
	IsSustainable       bool      `bson:"issustainable" json:"isSustainable"`
	CreatedAt           time.Time `bson:"createdat" json:"createdAt"`
}

// CanEnroll reports whether userID may take a seat right now. The database
// update re-checks the same conditions atomically; this guard exists so
// callers can fail with a precise message first.
func (ws *Workshop) CanEnroll(userID string) (bool, string) {
	for _, enrolled := range ws.Enrolled {
		if enrolled == userID {
			return false, "Already enrolled"
		}
	}
	if ws.CurrentParticipants >= ws.MaxParticipants {
		return false, "Workshop is full"
	}
	return true, ""
}
