// AngelaMos | 2026
// repository.go

package purchase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/proper-parts/server/internal/core"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Purchase, error)
	ListByEmail(ctx context.Context, email string) ([]Purchase, error)
	FindByID(ctx context.Context, id string) (*Purchase, error)
	Insert(ctx context.Context, p *Purchase) (*core.InsertAck, error)
	MarkPaid(ctx context.Context, id, transactionID string) (*core.UpdateAck, error)
	Ship(ctx context.Context, id string) (*core.UpdateAck, error)
	DeleteByID(ctx context.Context, id string) (*core.DeleteAck, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) ListAll(ctx context.Context) ([]Purchase, error) {
	return r.list(ctx, bson.D{})
}

func (r *repository) ListByEmail(
	ctx context.Context,
	email string,
) ([]Purchase, error) {
	return r.list(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *repository) list(
	ctx context.Context,
	filter bson.D,
) ([]Purchase, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	purchases := []Purchase{}
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", err)
	}

	return purchases, nil
}

func (r *repository) FindByID(
	ctx context.Context,
	id string,
) (*Purchase, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var p Purchase
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find purchase: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find purchase: %w", err)
	}

	return &p, nil
}

func (r *repository) Insert(
	ctx context.Context,
	p *Purchase,
) (*core.InsertAck, error) {
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("insert purchase: %w", err)
	}

	return core.NewInsertAck(res), nil
}

// MarkPaid records a successful payment. Safe to repeat: the update is a
// plain $set, so replaying it leaves the purchase unchanged.
func (r *repository) MarkPaid(
	ctx context.Context,
	id, transactionID string,
) (*core.UpdateAck, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "paid", Value: true},
		{Key: "status", Value: StatusPending},
		{Key: "transactionId", Value: transactionID},
	}}}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return nil, fmt.Errorf("mark purchase paid: %w", err)
	}

	return core.NewUpdateAck(res), nil
}

func (r *repository) Ship(
	ctx context.Context,
	id string,
) (*core.UpdateAck, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: StatusShipped},
	}}}

	res, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, update)
	if err != nil {
		return nil, fmt.Errorf("ship purchase: %w", err)
	}

	return core.NewUpdateAck(res), nil
}

func (r *repository) DeleteByID(
	ctx context.Context,
	id string,
) (*core.DeleteAck, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	res, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return nil, fmt.Errorf("delete purchase: %w", err)
	}

	return core.NewDeleteAck(res), nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf(
			"malformed id %q: %w",
			id,
			core.ErrInvalidInput,
		)
	}
	return oid, nil
}
