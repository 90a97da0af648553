package databases

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Singleton collections and the fixed _id of their only document
const (
	HomepageCollection   = "homepage_content"
	AboutCollection      = "about_page"
	ChatWidgetCollection = "chat_widget"

	singletonKey = "singleton"
)

// SingletonDatabase holds a collection with at most one document
type SingletonDatabase[T any] interface {
	// Get returns the document, persisting initial() first when none exists
	Get(ctx context.Context, initial func() *T) (*T, error)
	Save(ctx context.Context, doc *T) error
}

type singletonDatabase[T any] struct {
	db         DatabaseHelper
	collection string
}

// NewSingletonDatabase initializes a singleton database over the named collection
func NewSingletonDatabase[T any](db DatabaseHelper, collection string) SingletonDatabase[T] {
	return &singletonDatabase[T]{
		db:         db,
		collection: collection,
	}
}

// The single document is pinned to a fixed _id so the unique _id index keeps
// concurrent first reads from creating a second document.
func (s *singletonDatabase[T]) filter() bson.M {
	return bson.M{"_id": singletonKey}
}

func (s *singletonDatabase[T]) find(ctx context.Context) (*T, error) {
	doc := new(T)
	err := s.db.Collection(s.collection).FindOne(ctx, s.filter()).Decode(doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *singletonDatabase[T]) Get(ctx context.Context, initial func() *T) (*T, error) {
	doc, err := s.find(ctx)
	if err == nil {
		return doc, nil
	}
	if !isNoDocuments(err) {
		return nil, err
	}

	_, err = s.db.Collection(s.collection).UpdateOne(ctx, s.filter(),
		bson.M{"$setOnInsert": initial()}, options.Update().SetUpsert(true))
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, err
	}
	return s.find(ctx)
}

func (s *singletonDatabase[T]) Save(ctx context.Context, doc *T) error {
	_, err := s.db.Collection(s.collection).ReplaceOne(ctx, s.filter(), doc, options.Replace().SetUpsert(true))
	return err
}
