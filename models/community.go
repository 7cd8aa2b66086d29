package models

import "time"

var PostTypes = map[string]bool{
	"challenge": true,
	"story":     true,
	"question":  true,
	"artwork":   true,
}

type PostComment struct {
	UserID    string    `bson:"userid" json:"userId"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdat" json:"createdAt"`
	Likes     int       `bson:"likes" json:"likes"`
}

type CommunityPost struct {
	PostID     string        `bson:"postid" json:"postid"`
	Author     string        `bson:"author" json:"author"`
	AuthorName string        `bson:"authorname,omitempty" json:"authorName,omitempty"`
	Title      string        `bson:"title,omitempty" json:"title,omitempty"`
	Content    string        `bson:"content" json:"content"`
	Type       string        `bson:"type" json:"type"`
	Images     []string      `bson:"images" json:"images"`
	Likes      []string      `bson:"likes" json:"likes"`
	Comments   []PostComment `bson:"comments" json:"comments"`
	Tags       []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	Category   string        `bson:"category,omitempty" json:"category,omitempty"`
	ViewCount  int           `bson:"viewcount" json:"viewCount"`
	CreatedAt  time.Time     `bson:"createdat" json:"createdAt"`

	// Per-viewer, never stored.
	LikedByMe bool `bson:"-" json:"likedByMe"`
}
