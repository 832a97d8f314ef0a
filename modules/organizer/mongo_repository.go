package organizer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/gamedock/gamedock/core"
)

// MongoRepository implements Repository over a single MongoDB
// collection.
type MongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository creates a repository for the named collection.
func NewMongoRepository(db *mongo.Database, collection string) *MongoRepository {
	return &MongoRepository{coll: db.Collection(collection)}
}

// Create inserts the document, stamping creation and update times.
func (r *MongoRepository) Create(ctx context.Context, doc *Document) error {
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return storeErr("insert document", err)
	}
	return nil
}

// GetByID returns the document or ErrDocumentNotFound.
func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Document, error) {
	var doc Document
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, storeErr("find document", err)
	}
	return &doc, nil
}

// List returns every document in the collection.
func (r *MongoRepository) List(ctx context.Context) ([]Document, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr("list documents", err)
	}

	var docs []Document
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, storeErr("decode documents", err)
	}
	return docs, nil
}

// Update replaces the stored document's mutable fields.
func (r *MongoRepository) Update(ctx context.Context, doc *Document) error {
	doc.UpdatedAt = time.Now()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": doc.ID}, bson.M{"$set": bson.M{
		"name":        doc.Name,
		"description": doc.Description,
		"updated_at":  doc.UpdatedAt,
	}})
	if err != nil {
		return storeErr("update document", err)
	}
	if result.MatchedCount == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// Delete removes the document by id.
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return storeErr("delete document", err)
	}
	if result.DeletedCount == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, errors.Join(core.ErrStoreUnavailable, err))
}
