// AngelaMos | 2026
// repository.go

package profile

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/proper-parts/server/internal/core"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	Upsert(ctx context.Context, email string, req UpdateRequest) (*core.UpdateAck, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) FindByEmail(
	ctx context.Context,
	email string,
) (*Profile, error) {
	var p Profile
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &p, nil
}

func (r *repository) Upsert(
	ctx context.Context,
	email string,
	req UpdateRequest,
) (*core.UpdateAck, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "email", Value: email},
		{Key: "city", Value: req.City},
		{Key: "education", Value: req.Education},
		{Key: "phone", Value: req.Phone},
		{Key: "link", Value: req.Link},
	}}}

	res, err := r.col.UpdateOne(
		ctx,
		bson.D{{Key: "email", Value: email}},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		if core.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("upsert profile: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	return core.NewUpdateAck(res), nil
}
