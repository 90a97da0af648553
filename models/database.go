package models

import "go.mongodb.org/mongo-driver/bson"

// DatabaseQuery is a raw query against one collection
type DatabaseQuery struct {
	Collection string                 `json:"collection"`
	Query      map[string]interface{} `json:"query"`
	Limit      int64                  `json:"limit"`
}

// Validate checks that a collection was named
func (q DatabaseQuery) Validate() error {
	return required("collection", q.Collection)
}

// DatabaseQueryResult holds the documents matched by a DatabaseQuery
type DatabaseQueryResult struct {
	Count     int      `json:"count"`
	Documents []bson.M `json:"documents"`
}

// CollectionList lists the collection names of the database
type CollectionList struct {
	Collections []string `json:"collections"`
}
