package handlers

import (
	"net/http"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

const defaultQueryLimit = 50

// Database exposes the raw collections to admins for debugging
type Database struct {
	Inspector databases.Inspector
	MaxLimit  int64
}

// CollectionsHandler lists the collection names
func (d Database) CollectionsHandler(w http.ResponseWriter, r *http.Request) {
	names, err := d.Inspector.Collections(r.Context())
	if err != nil {
		writeError(w, "failed to list collections", err)
		return
	}
	writeJSON(w, http.StatusOK, models.CollectionList{Collections: names})
}

// QueryHandler runs the given filter against a collection. The filter is not
// restricted in any way.
func (d Database) QueryHandler(w http.ResponseWriter, r *http.Request) {
	var q models.DatabaseQuery
	if err := decodeJSON(r, &q); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	if err := q.Validate(); err != nil {
		writeError(w, "failed to query collection", err)
		return
	}

	filter := bson.M(q.Query)
	if filter == nil {
		filter = bson.M{}
	}
	docs, err := d.Inspector.Query(r.Context(), q.Collection, filter, d.limit(q.Limit))
	if err != nil {
		writeError(w, "failed to query collection", err)
		return
	}
	writeJSON(w, http.StatusOK, models.DatabaseQueryResult{Count: len(docs), Documents: docs})
}

// limit applies the default and clamps to the configured maximum
func (d Database) limit(requested int64) int64 {
	max := d.MaxLimit
	if max <= 0 {
		max = 100
	}
	if requested <= 0 {
		requested = defaultQueryLimit
	}
	if requested > max {
		return max
	}
	return requested
}

// StatsHandler counts the documents of every collection
func (d Database) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := d.Inspector.Stats(r.Context())
	if err != nil {
		writeError(w, "failed to get database stats", err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
