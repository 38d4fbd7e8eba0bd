// AngelaMos | 2026
// repository.go

package user

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
	ListAll(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Upsert(ctx context.Context, email string, fields bson.M) (*core.UpdateAck, error)
	PromoteToAdmin(ctx context.Context, email string) (*core.UpdateAck, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type repository struct {
	col *mongo.Collection
}

func NewRepository(col *mongo.Collection) Repository {
	return &repository{col: col}
}

func (r *repository) ListAll(ctx context.Context) ([]User, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (r *repository) FindByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	var u User
	err := r.col.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &u, nil
}

// Upsert replaces the given fields on the user keyed by email, creating the
// document if absent. The email filter is the unique key, so repeating the
// call never duplicates a user.
func (r *repository) Upsert(
	ctx context.Context,
	email string,
	fields bson.M,
) (*core.UpdateAck, error) {
	if fields == nil {
		fields = bson.M{}
	}
	delete(fields, "_id")
	fields["email"] = email

	res, err := r.col.UpdateOne(
		ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: fields}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// Concurrent upserts for the same email can race on the unique
		// index; one of them loses with a duplicate key error.
		if core.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("upsert user: %w", core.ErrDuplicateKey)
		}
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	return core.NewUpdateAck(res), nil
}

func (r *repository) PromoteToAdmin(
	ctx context.Context,
	email string,
) (*core.UpdateAck, error) {
	res, err := r.col.UpdateOne(
		ctx,
		bson.D{{Key: "email", Value: email}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "role", Value: RoleAdmin},
		}}},
	)
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}

	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("promote user: %w", core.ErrNotFound)
	}

	return core.NewUpdateAck(res), nil
}

// RoleByEmail satisfies middleware.RoleResolver.
func (r *repository) RoleByEmail(
	ctx context.Context,
	email string,
) (string, error) {
	u, err := r.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	return u.Role, nil
}
