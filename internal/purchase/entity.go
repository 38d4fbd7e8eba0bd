// AngelaMos | 2026
// entity.go

package purchase

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle. Status only ever moves pending -> shipped.
const (
	StatusPending = "pending"
	StatusShipped = "shipped"
)

// Purchase is one checkout line: a tool reference plus the buyer's email.
// Paid and TransactionID are written by payment confirmation, Status by
// order management.
type Purchase struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"           json:"_id,omitempty"`
	Email         string             `bson:"email"                   json:"email"    validate:"required,email"`
	ToolID        string             `bson:"toolId"                  json:"toolId"   validate:"required"`
	ToolName      string             `bson:"toolName,omitempty"      json:"toolName,omitempty"`
	Price         float64            `bson:"price"                   json:"price"    validate:"gte=0"`
	Quantity      int                `bson:"quantity,omitempty"      json:"quantity,omitempty" validate:"gte=0"`
	Address       string             `bson:"address,omitempty"       json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty"         json:"phone,omitempty"`
	Paid          bool               `bson:"paid,omitempty"          json:"paid,omitempty"`
	Status        string             `bson:"status,omitempty"        json:"status,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
