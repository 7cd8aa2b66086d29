package models

import "time"

var ProductCategories = map[string]bool{
	"Textiles":    true,
	"Clothing":    true,
	"Accessories": true,
	"Home Decor":  true,
	"Art Pieces":  true,
}

type Product struct {
	ProductID          string    `bson:"productid" json:"productid"`
	Name               string    `bson:"name" json:"name"`
	Description        string    `bson:"description,omitempty" json:"description,omitempty"`
	Artist             string    `bson:"artist" json:"artist"`
	Category           string    `bson:"category" json:"category"`
	Price              float64   `bson:"price" json:"price"`
	OriginalPrice      float64   `bson:"originalprice,omitempty" json:"originalPrice,omitempty"`
	Quantity           int       `bson:"quantity" json:"quantity"`
	Images             []string  `bson:"images" json:"images"`
	Materials          []string  `bson:"materials,omitempty" json:"materials,omitempty"`
	Dimensions         string    `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	Customizable       bool      `bson:"customizable" json:"customizable"`
	FairTradeCertified bool      `bson:"fairtradecertified" json:"fairTradeCertified"`
	EcoFriendly        bool      `bson:"ecofriendly" json:"ecoFriendly"`
	ArtisanStory       string    `bson:"artisanstory,omitempty" json:"artisanStory,omitempty"`
	Reviews            []Review  `bson:"reviews" json:"reviews"`
	AverageRating      float64   `bson:"averagerating" json:"averageRating"`
	Sold               int       `bson:"sold" json:"sold"`
	CreatedAt          time.Time `bson:"createdat" json:"createdAt"`
}
