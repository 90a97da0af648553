package databases

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stadtwache/stadtwache-api/models"
)

// Kind describes how one content collection is stored and listed
type Kind struct {
	Collection string
	// Visibility is the boolean field gating public listing, empty when the
	// kind is never listed publicly
	Visibility string
	SortField  string
	Descending bool
}

func (k Kind) sort() bson.D {
	order := 1
	if k.Descending {
		order = -1
	}
	return bson.D{{Key: k.SortField, Value: order}}
}

// The content kinds served by the API
var (
	NewsKind        = Kind{Collection: "news", Visibility: "published", SortField: "date", Descending: true}
	ServiceKind     = Kind{Collection: "services", Visibility: "active", SortField: "order"}
	TeamKind        = Kind{Collection: "team_members", Visibility: "active", SortField: "order"}
	StatisticKind   = Kind{Collection: "statistics", Visibility: "active", SortField: "order"}
	NavigationKind  = Kind{Collection: "navigation", Visibility: "active", SortField: "order"}
	ApplicationKind = Kind{Collection: "applications", SortField: "created_at", Descending: true}
	FeedbackKind    = Kind{Collection: "feedback", SortField: "created_at", Descending: true}
	ReportKind      = Kind{Collection: "reports", SortField: "created_at", Descending: true}
)

// ListOptions narrows a listing
type ListOptions struct {
	VisibleOnly bool
	// Where holds extra equality or $in conditions
	Where bson.M
	Limit int64
}

// ContentDatabase contains the methods shared by every content collection
type ContentDatabase[T any] interface {
	List(ctx context.Context, opts ListOptions) ([]T, error)
	FindByID(ctx context.Context, id string, visibleOnly bool) (*T, error)
	Insert(ctx context.Context, doc *T) error
	Replace(ctx context.Context, id string, doc *T) error
	Set(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, docs []T) error
	Count(ctx context.Context, filter bson.M) (int64, error)
}

type contentDatabase[T any] struct {
	db   DatabaseHelper
	kind Kind
}

// NewContentDatabase initializes a content database for the given kind with the provided db connection
func NewContentDatabase[T any](db DatabaseHelper, kind Kind) ContentDatabase[T] {
	return &contentDatabase[T]{
		db:   db,
		kind: kind,
	}
}

func (c *contentDatabase[T]) collection() CollectionHelper {
	return c.db.Collection(c.kind.Collection)
}

func (c *contentDatabase[T]) notFound(id string) error {
	return fmt.Errorf("%w: no document in %s with id %q", models.ErrNotFound, c.kind.Collection, id)
}

func (c *contentDatabase[T]) List(ctx context.Context, opts ListOptions) ([]T, error) {
	filter := bson.M{}
	for k, v := range opts.Where {
		filter[k] = v
	}
	if opts.VisibleOnly && c.kind.Visibility != "" {
		filter[c.kind.Visibility] = true
	}

	findOpts := options.Find().SetSort(c.kind.sort())
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := c.collection().Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cursor.Decode(&docs); err != nil {
		return nil, err
	}
	// the frontend expects an array, never null
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

func (c *contentDatabase[T]) FindByID(ctx context.Context, id string, visibleOnly bool) (*T, error) {
	filter := bson.M{"id": id}
	if visibleOnly && c.kind.Visibility != "" {
		filter[c.kind.Visibility] = true
	}
	doc := new(T)
	if err := c.collection().FindOne(ctx, filter).Decode(doc); err != nil {
		if isNoDocuments(err) {
			return nil, c.notFound(id)
		}
		return nil, err
	}
	return doc, nil
}

func (c *contentDatabase[T]) Insert(ctx context.Context, doc *T) error {
	_, err := c.collection().InsertOne(ctx, doc)
	return err
}

func (c *contentDatabase[T]) Replace(ctx context.Context, id string, doc *T) error {
	res, err := c.collection().ReplaceOne(ctx, bson.M{"id": id}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return c.notFound(id)
	}
	return nil
}

func (c *contentDatabase[T]) Set(ctx context.Context, id string, fields bson.M) error {
	res, err := c.collection().UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return c.notFound(id)
	}
	return nil
}

func (c *contentDatabase[T]) Delete(ctx context.Context, id string) error {
	deleted, err := c.collection().DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return c.notFound(id)
	}
	return nil
}

func (c *contentDatabase[T]) ReplaceAll(ctx context.Context, docs []T) error {
	if _, err := c.collection().DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(docs) == 0 {
		return nil
	}
	batch := make([]interface{}, len(docs))
	for i := range docs {
		batch[i] = &docs[i]
	}
	return c.collection().InsertMany(ctx, batch)
}

func (c *contentDatabase[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	if filter == nil {
		filter = bson.M{}
	}
	return c.collection().CountDocuments(ctx, filter)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func isNotFound(err error) bool {
	return errors.Is(err, models.ErrNotFound)
}
