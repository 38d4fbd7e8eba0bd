// AngelaMos | 2026
// ack.go

package core

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Write acknowledgments returned to callers verbatim. Handlers do not
// reshape repository results beyond this mapping.

type InsertAck struct {
	InsertedID any `json:"insertedId"`
}

type UpdateAck struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

type DeleteAck struct {
	DeletedCount int64 `json:"deletedCount"`
}

func NewInsertAck(res *mongo.InsertOneResult) *InsertAck {
	return &InsertAck{InsertedID: res.InsertedID}
}

func NewUpdateAck(res *mongo.UpdateResult) *UpdateAck {
	return &UpdateAck{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func NewDeleteAck(res *mongo.DeleteResult) *DeleteAck {
	return &DeleteAck{DeletedCount: res.DeletedCount}
}
