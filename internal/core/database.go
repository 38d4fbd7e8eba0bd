// AngelaMos | 2026
// database.go

package core

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/proper-parts/server/internal/config"
)

// Collection names in the shared logical database.
const (
	CollectionTools     = "tools"
	CollectionPurchases = "purchase"
	CollectionReviews   = "reviews"
	CollectionUsers     = "users"
	CollectionProfiles  = "profile"
	CollectionPayments  = "payments"
)

// Store owns the Mongo client and hands out collection handles. It is
// constructed once in main and passed into repositories; nothing reaches
// for it globally.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(
	ctx context.Context,
	cfg config.DatabaseConfig,
) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.URL).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background()) //nolint:errcheck // cleanup on connection failure
		return nil, fmt.Errorf("ping store: %w", err)
	}

	return &Store{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// EnsureIndexes creates the indexes the data model depends on. Email is the
// natural key for both users and profiles.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	emailKey := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, name := range []string{CollectionUsers, CollectionProfiles} {
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, emailKey); err != nil {
			return fmt.Errorf("create email index on %s: %w", name, err)
		}
	}

	purchaseEmail := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	}
	if _, err := s.db.Collection(CollectionPurchases).Indexes().CreateOne(ctx, purchaseEmail); err != nil {
		return fmt.Errorf("create email index on %s: %w", CollectionPurchases, err)
	}

	return nil
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Tools() *mongo.Collection     { return s.db.Collection(CollectionTools) }
func (s *Store) Purchases() *mongo.Collection { return s.db.Collection(CollectionPurchases) }
func (s *Store) Reviews() *mongo.Collection   { return s.db.Collection(CollectionReviews) }
func (s *Store) Users() *mongo.Collection     { return s.db.Collection(CollectionUsers) }
func (s *Store) Profiles() *mongo.Collection  { return s.db.Collection(CollectionProfiles) }
func (s *Store) Payments() *mongo.Collection  { return s.db.Collection(CollectionPayments) }

func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}

	return nil
}

// Counts returns the estimated document count per collection, used by the
// admin ops endpoints.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	names := []string{
		CollectionTools,
		CollectionPurchases,
		CollectionReviews,
		CollectionUsers,
		CollectionProfiles,
		CollectionPayments,
	}

	counts := make(map[string]int64, len(names))
	for _, name := range names {
		n, err := s.db.Collection(name).EstimatedDocumentCount(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", name, err)
		}
		counts[name] = n
	}

	return counts, nil
}

func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	disconnectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("disconnect store: %w", err)
	}

	return nil
}

// IsDuplicateKeyError reports whether err is a unique-index violation.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
