// AngelaMos | 2026
// entity.go

package profile

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile holds the free-form account details a user maintains about
// themselves, keyed by email like the user document.
type Profile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"       json:"_id,omitempty"`
	Email     string             `bson:"email"               json:"email"`
	City      string             `bson:"city,omitempty"      json:"city,omitempty"`
	Education string             `bson:"education,omitempty" json:"education,omitempty"`
	Phone     string             `bson:"phone,omitempty"     json:"phone,omitempty"`
	Link      string             `bson:"link,omitempty"      json:"link,omitempty"`
}

// UpdateRequest carries the four mutable profile fields. Anything else in
// the body is ignored.
type UpdateRequest struct {
	City      string `json:"city"`
	Education string `json:"education"`
	Phone     string `json:"phone"`
	Link      string `json:"link"`
}
