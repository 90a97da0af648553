package testhelpers

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

// ContentStore is an in-memory databases.ContentDatabase
type ContentStore[T any] struct {
	mu   sync.Mutex
	kind databases.Kind
	docs []bson.M
}

// NewContentStore creates an empty store listing documents the way kind does
func NewContentStore[T any](kind databases.Kind) *ContentStore[T] {
	return &ContentStore[T]{kind: kind}
}

func (s *ContentStore[T]) notFound(id string) error {
	return fmt.Errorf("%w: no document in %s with id %q", models.ErrNotFound, s.kind.Collection, id)
}

func (s *ContentStore[T]) indexOf(id string) int {
	for i, doc := range s.docs {
		if doc["id"] == id {
			return i
		}
	}
	return -1
}

func (s *ContentStore[T]) List(_ context.Context, opts databases.ListOptions) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	filter := bson.M{}
	for k, v := range opts.Where {
		filter[k] = v
	}
	if opts.VisibleOnly && s.kind.Visibility != "" {
		filter[s.kind.Visibility] = true
	}

	var selected []bson.M
	for _, doc := range s.docs {
		if matches(doc, filter) {
			selected = append(selected, doc)
		}
	}
	field := s.kind.SortField
	sort.SliceStable(selected, func(i, j int) bool {
		if s.kind.Descending {
			return less(selected[j][field], selected[i][field])
		}
		return less(selected[i][field], selected[j][field])
	})
	if opts.Limit > 0 && int64(len(selected)) > opts.Limit {
		selected = selected[:opts.Limit]
	}

	out := []T{}
	for _, doc := range selected {
		t, err := fromMap[T](doc)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, nil
}

func (s *ContentStore[T]) FindByID(_ context.Context, id string, visibleOnly bool) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, s.notFound(id)
	}
	if visibleOnly && s.kind.Visibility != "" && s.docs[i][s.kind.Visibility] != true {
		return nil, s.notFound(id)
	}
	return fromMap[T](s.docs[i])
}

func (s *ContentStore[T]) Insert(_ context.Context, doc *T) error {
	m, err := toMap(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, m)
	return nil
}

func (s *ContentStore[T]) Replace(_ context.Context, id string, doc *T) error {
	m, err := toMap(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return s.notFound(id)
	}
	s.docs[i] = m
	return nil
}

func (s *ContentStore[T]) Set(_ context.Context, id string, fields bson.M) error {
	m, err := toMap(fields)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return s.notFound(id)
	}
	for k, v := range m {
		s.docs[i][k] = v
	}
	return nil
}

func (s *ContentStore[T]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return s.notFound(id)
	}
	s.docs = append(s.docs[:i], s.docs[i+1:]...)
	return nil
}

func (s *ContentStore[T]) ReplaceAll(_ context.Context, docs []T) error {
	replaced := make([]bson.M, 0, len(docs))
	for i := range docs {
		m, err := toMap(&docs[i])
		if err != nil {
			return err
		}
		replaced = append(replaced, m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = replaced
	return nil
}

func (s *ContentStore[T]) Count(_ context.Context, filter bson.M) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, doc := range s.docs {
		if matches(doc, filter) {
			n++
		}
	}
	return n, nil
}
