package models

import "time"

// Roles. A user has exactly one; it never changes after registration and
// gates which operations are permitted.
const (
	RoleBuyer   = "buyer"
	RoleArtisan = "artisan"
	RoleLearner = "learner"
	RoleAdmin   = "admin"
)

var validRoles = map[string]bool{
	RoleBuyer:   true,
	RoleArtisan: true,
	RoleLearner: true,
	RoleAdmin:   true,
}

func ValidRole(role string) bool {
	return validRoles[role]
}

type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
}

type User struct {
	UserID            string      `bson:"userid" json:"userid"`
	Name              string      `bson:"name" json:"name"`
	Email             string      `bson:"email" json:"email"`
	Password          string      `bson:"password" json:"password,omitempty"`
	Role              string      `bson:"role" json:"role"`
	Bio               string      `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage      string      `bson:"profileimage,omitempty" json:"profileImage,omitempty"`
	Skills            []string    `bson:"skills,omitempty" json:"skills,omitempty"`
	Location          string      `bson:"location,omitempty" json:"location,omitempty"`
	WebsiteURL        string      `bson:"websiteurl,omitempty" json:"websiteUrl,omitempty"`
	SocialLinks       SocialLinks `bson:"sociallinks,omitempty" json:"socialLinks,omitempty"`
	Workshops         []string    `bson:"workshops" json:"workshops"`
	Products          []string    `bson:"products" json:"products"`
	EnrolledWorkshops []string    `bson:"enrolledworkshops" json:"enrolledWorkshops"`
	Purchases         []string    `bson:"purchases" json:"purchases"`
	CreatedAt         time.Time   `bson:"createdat" json:"createdAt"`
}
