package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoOpTimeout = 5 * time.Second

// baselineDoc is one persisted baseline. Price and Stock are pointers so a
// document that has only ever seen one of the two fields reports the other
// as absent.
type baselineDoc struct {
	Key       string  `bson:"key"`
	Price     *int64  `bson:"price,omitempty"`
	Stock     *string `bson:"stock,omitempty"`
	UpdatedAt int64   `bson:"updated_at"`
}

// MongoStore is the persistent baseline store: one document per canonical
// key, updated by upsert so price and stock writes stay independent.
type MongoStore struct {
	client    *mongo.Client
	baselines *mongo.Collection
}

// NewMongoStore connects to MongoDB and prepares the baselines collection.
// Connection or ping failure is returned to the caller; the pipeline treats
// it as a fatal precondition.
func NewMongoStore(uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("can't ping MongoDB: %w", err)
	}

	s := &MongoStore{
		client:    client,
		baselines: client.Database(database).Collection("baselines"),
	}
	if err := s.createIndexes(ctx); err != nil {
		return nil, fmt.Errorf("can't create indexes: %w", err)
	}
	return s, nil
}

func (s *MongoStore) createIndexes(ctx context.Context) error {
	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := s.baselines.Indexes().CreateOne(ctx, model)
	return err
}

// Ping verifies the connection is still alive.
func (s *MongoStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()
	return s.client.Ping(ctx, nil)
}

// GetPrice returns the stored price for key and whether one exists.
func (s *MongoStore) GetPrice(ctx context.Context, key string) (int64, bool, error) {
	doc, err := s.find(ctx, key)
	if err != nil || doc == nil || doc.Price == nil {
		return 0, false, err
	}
	return *doc.Price, true, nil
}

// GetStock returns the stored stock label for key and whether one exists.
func (s *MongoStore) GetStock(ctx context.Context, key string) (string, bool, error) {
	doc, err := s.find(ctx, key)
	if err != nil || doc == nil || doc.Stock == nil {
		return "", false, err
	}
	return *doc.Stock, true, nil
}

// PutPrice overwrites the stored price for key.
func (s *MongoStore) PutPrice(ctx context.Context, key string, price int64) error {
	return s.upsert(ctx, key, bson.M{"price": price})
}

// PutStock overwrites the stored stock label for key.
func (s *MongoStore) PutStock(ctx context.Context, key string, label string) error {
	return s.upsert(ctx, key, bson.M{"stock": label})
}

func (s *MongoStore) find(ctx context.Context, key string) (*baselineDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	var doc baselineDoc
	err := s.baselines.FindOne(ctx, bson.M{"key": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *MongoStore) upsert(ctx context.Context, key string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	fields["updated_at"] = time.Now().Unix()
	_, err := s.baselines.UpdateOne(
		ctx,
		bson.M{"key": key},
		bson.M{"$set": fields, "$setOnInsert": bson.M{"key": key}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
