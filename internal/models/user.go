package models

import "time"

// User is a document in the "users" collection. The _id is the identity the
// auth layer issues (a UUID string). Some accounts imported from the previous
// provider carry that provider's id in the uid field instead, so author
// lookups fall back to it when the _id lookup misses.
type User struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UID       string    `bson:"uid,omitempty" json:"uid,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`

	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"` // Don't return password in JSON

	// Public profile fields
	Bio               string `bson:"bio,omitempty" json:"bio,omitempty"`
	Location          string `bson:"location,omitempty" json:"location,omitempty"`
	Organization      string `bson:"organization,omitempty" json:"organization,omitempty"`
	Twitter           string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	LinkedIn          string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	ProfilePictureURL string `bson:"profilePictureUrl,omitempty" json:"profilePictureUrl,omitempty"`
}
