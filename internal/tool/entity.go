// AngelaMos | 2026
// entity.go

package tool

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tool is a product in the catalog.
type Tool struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"     json:"_id,omitempty"`
	Name        string             `bson:"name"              json:"name"        validate:"required,min=1,max=200"`
	Price       float64            `bson:"price"             json:"price"       validate:"gte=0"`
	Description string             `bson:"description"       json:"description" validate:"max=2000"`
	Quantity    int                `bson:"quantity"          json:"quantity"    validate:"gte=0"`
	MinOrder    int                `bson:"minOrder,omitempty" json:"minOrder,omitempty" validate:"gte=0"`
	Image       string             `bson:"img,omitempty"     json:"img,omitempty"`
}
