// internal/output/mongodb.go
package output

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/valeran/harvester/internal/record"
)

const mongoConnectTimeout = 10 * time.Second

// MongoWriter writes the harvest into a MongoDB collection, one document per
// record.
type MongoWriter struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoWriter connects to the given URI and targets database.collection.
func NewMongoWriter(uri, database, collection string) (*MongoWriter, error) {
	if uri == "" || database == "" || collection == "" {
		return nil, fmt.Errorf("mongodb output requires uri, database and collection")
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	return &MongoWriter{
		client:     client,
		collection: client.Database(database).Collection(collection),
	}, nil
}

// Write inserts one document per record, keyed by the schema headers.
func (w *MongoWriter) Write(headers []string, records []record.Record) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		values := rec.Values()
		doc := bson.M{}
		for i, header := range headers {
			if i < len(values) {
				doc[header] = values[i]
			}
		}
		docs = append(docs, doc)
	}

	if _, err := w.collection.InsertMany(context.Background(), docs); err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}

	return nil
}

// Close disconnects from MongoDB.
func (w *MongoWriter) Close() error {
	return w.client.Disconnect(context.Background())
}
