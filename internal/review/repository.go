// AngelaMos | 2026
// repository.go

package review

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/proper-parts/server/internal/core"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Review, error)
	Insert(ctx context.Context, rv *Review) (*core.InsertAck, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) ListAll(ctx context.Context) ([]Review, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews := []Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}

func (r *repository) Insert(
	ctx context.Context,
	rv *Review,
) (*core.InsertAck, error) {
	res, err := r.col.InsertOne(ctx, rv)
	if err != nil {
		return nil, fmt.Errorf("insert review: %w", err)
	}

	return core.NewInsertAck(res), nil
}
