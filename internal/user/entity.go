// AngelaMos | 2026
// entity.go

package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is keyed by email, the natural key; the document id is never used
// for lookups.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Email string             `bson:"email"          json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
