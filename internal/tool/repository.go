// AngelaMos | 2026
// repository.go

package tool

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
	ListAll(ctx context.Context) ([]Tool, error)
	FindByID(ctx context.Context, id string) (*Tool, error)
	Insert(ctx context.Context, t *Tool) (*core.InsertAck, error)
	DeleteByID(ctx context.Context, id string) (*core.DeleteAck, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) ListAll(ctx context.Context) ([]Tool, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list tools: %w", err)
	}

	tools := []Tool{}
	if err := cursor.All(ctx, &tools); err != nil {
		return nil, fmt.Errorf("decode tools: %w", err)
	}

	return tools, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Tool, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var t Tool
	err = r.col.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find tool: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find tool: %w", err)
	}

	return &t, nil
}

func (r *repository) Insert(
	ctx context.Context,
	t *Tool,
) (*core.InsertAck, error) {
	res, err := r.col.InsertOne(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("insert tool: %w", err)
	}

	return core.NewInsertAck(res), nil
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
		return nil, fmt.Errorf("delete tool: %w", err)
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
