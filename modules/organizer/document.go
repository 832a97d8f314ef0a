package organizer

import (
	"context"
	"time"
)

// Collections lists every organizer collection served over the uniform
// CRUD contract.
var Collections = []string{
	"projects",
	"notes",
	"sketches",
	"storyboards",
	"tasklogs",
	"tags",
	"categories",
	"games",
}

// Document is the shared shape of all organizer records.
type Document struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Owner       string    `bson:"owner" json:"owner"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// Repository is the uniform CRUD contract each collection implements.
type Repository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id string) (*Document, error)
	List(ctx context.Context) ([]Document, error)
	Update(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id string) error
}
