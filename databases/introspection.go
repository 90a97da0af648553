package databases

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Inspector exposes raw collections to the admin database tools. Query passes
// the caller's filter to mongo unchanged, so any operator is allowed; it is only
// reachable behind the admin middleware.
type Inspector interface {
	Collections(ctx context.Context) ([]string, error)
	Query(ctx context.Context, collection string, filter interface{}, limit int64) ([]bson.M, error)
	Stats(ctx context.Context) (map[string]int64, error)
}

type inspector struct {
	db DatabaseHelper
}

// NewInspector initializes the admin database inspector
func NewInspector(db DatabaseHelper) Inspector {
	return &inspector{db: db}
}

func (i *inspector) Collections(ctx context.Context) ([]string, error) {
	names, err := i.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

func (i *inspector) Query(ctx context.Context, collection string, filter interface{}, limit int64) ([]bson.M, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := i.db.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cursor.Decode(&docs); err != nil {
		return nil, err
	}
	out := make([]bson.M, len(docs))
	for n, doc := range docs {
		out[n] = Stringify(doc).(bson.M)
	}
	return out, nil
}

func (i *inspector) Stats(ctx context.Context) (map[string]int64, error) {
	names, err := i.Collections(ctx)
	if err != nil {
		return nil, err
	}
	stats := make(map[string]int64, len(names))
	for _, name := range names {
		count, err := i.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		stats[name] = count
	}
	return stats, nil
}

// Stringify walks a decoded document and replaces ObjectIDs with their hex
// form. Ordered documents become maps so they encode as JSON objects.
func Stringify(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t.Hex()
	case bson.M:
		out := bson.M{}
		for k, val := range t {
			out[k] = Stringify(val)
		}
		return out
	case map[string]interface{}:
		return Stringify(bson.M(t))
	case bson.D:
		out := bson.M{}
		for _, e := range t {
			out[e.Key] = Stringify(e.Value)
		}
		return out
	case bson.A:
		return Stringify([]interface{}(t))
	case []interface{}:
		out := make([]interface{}, len(t))
		for n, val := range t {
			out[n] = Stringify(val)
		}
		return out
	default:
		return v
	}
}
