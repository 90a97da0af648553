package testhelpers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stadtwache/stadtwache-api/databases"
)

// Inspector is an in-memory databases.Inspector over raw documents
type Inspector struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	// LastLimit records the limit of the most recent Query
	LastLimit int64
}

// NewInspector creates an inspector with no collections
func NewInspector() *Inspector {
	return &Inspector{collections: map[string][]bson.M{}}
}

// Add appends raw documents to a collection
func (i *Inspector) Add(collection string, docs ...bson.M) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.collections[collection] = append(i.collections[collection], docs...)
}

func (i *Inspector) Collections(context.Context) ([]string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	names := make([]string, 0, len(i.collections))
	for name := range i.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (i *Inspector) Query(_ context.Context, collection string, filter interface{}, limit int64) ([]bson.M, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.LastLimit = limit

	var where bson.M
	switch f := filter.(type) {
	case nil:
		where = bson.M{}
	case bson.M:
		where = f
	case map[string]interface{}:
		where = f
	default:
		return nil, fmt.Errorf("unsupported filter %T", filter)
	}

	out := []bson.M{}
	for _, doc := range i.collections[collection] {
		if int64(len(out)) >= limit {
			break
		}
		if matches(doc, where) {
			out = append(out, databases.Stringify(doc).(bson.M))
		}
	}
	return out, nil
}

func (i *Inspector) Stats(ctx context.Context) (map[string]int64, error) {
	names, _ := i.Collections(ctx)
	i.mu.Lock()
	defer i.mu.Unlock()
	stats := map[string]int64{}
	for _, name := range names {
		stats[name] = int64(len(i.collections[name]))
	}
	return stats, nil
}
