// AngelaMos | 2026
// entity.go

package review

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is immutable once posted: no update or delete path exists.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"  json:"_id,omitempty"`
	Email  string             `bson:"email"          json:"email"  validate:"required,email"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Text   string             `bson:"text"           json:"text"   validate:"required,max=2000"`
	Rating float64            `bson:"rating"         json:"rating" validate:"gte=1,lte=5"`
}
