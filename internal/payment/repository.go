// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/proper-parts/server/internal/core"
)

// Repository appends payment documents. Payments are an append-only ledger:
// nothing updates or deletes them.
type Repository interface {
	Record(ctx context.Context, doc bson.M) (*core.InsertAck, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) Record(
	ctx context.Context,
	doc bson.M,
) (*core.InsertAck, error) {
	delete(doc, "_id")

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	return core.NewInsertAck(res), nil
}
