// Package testhelpers provides in-memory implementations of the database
// interfaces so handlers can be exercised end to end without mongo.
package testhelpers

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

// NewStores builds a full set of empty in-memory stores
func NewStores() databases.Stores {
	return databases.Stores{
		Admins:       NewAdminStore(),
		News:         NewContentStore[models.NewsItem](databases.NewsKind),
		Services:     NewContentStore[models.Service](databases.ServiceKind),
		Team:         NewContentStore[models.TeamMember](databases.TeamKind),
		Statistics:   NewContentStore[models.Statistic](databases.StatisticKind),
		Navigation:   NewContentStore[models.NavigationItem](databases.NavigationKind),
		Applications: NewContentStore[models.Application](databases.ApplicationKind),
		Feedback:     NewContentStore[models.Feedback](databases.FeedbackKind),
		Reports:      NewContentStore[models.Report](databases.ReportKind),
		Homepage:     &SingletonStore[models.HomepageContent]{},
		About:        &SingletonStore[models.AboutPage]{},
		ChatWidget:   &SingletonStore[models.ChatWidget]{},
		Inspector:    NewInspector(),
	}
}

// toMap converts a document to its JSON field map, which shares names with
// the stored bson fields
func toMap(v interface{}) (bson.M, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := bson.M{}
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap[T any](m bson.M) (*T, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	doc := new(T)
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// matches reports whether doc satisfies an equality or $in filter
func matches(doc, filter bson.M) bool {
	for field, want := range filter {
		got := doc[field]
		if cond, ok := want.(bson.M); ok {
			if in, ok := cond["$in"]; ok {
				if !contains(in, got) {
					return false
				}
				continue
			}
		}
		if !equal(got, want) {
			return false
		}
	}
	return true
}

func contains(list, v interface{}) bool {
	switch l := list.(type) {
	case []string:
		for _, s := range l {
			if equal(v, s) {
				return true
			}
		}
	case []interface{}:
		for _, s := range l {
			if equal(v, s) {
				return true
			}
		}
	case bson.A:
		return contains([]interface{}(l), v)
	}
	return false
}

func equal(a, b interface{}) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// less orders two JSON values of the same field
func less(a, b interface{}) bool {
	switch av := a.(type) {
	case float64:
		bv, _ := b.(float64)
		return av < bv
	case string:
		bv, _ := b.(string)
		at, aerr := time.Parse(time.RFC3339Nano, av)
		bt, berr := time.Parse(time.RFC3339Nano, bv)
		if aerr == nil && berr == nil {
			return at.Before(bt)
		}
		return av < bv
	case bool:
		bv, _ := b.(bool)
		return !av && bv
	}
	return false
}
