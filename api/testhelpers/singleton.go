package testhelpers

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// SingletonStore is an in-memory databases.SingletonDatabase
type SingletonStore[T any] struct {
	mu  sync.Mutex
	doc bson.M
	// Initialized counts how often Get had to persist the initial document
	Initialized int
}

func (s *SingletonStore[T]) Get(_ context.Context, initial func() *T) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		m, err := toMap(initial())
		if err != nil {
			return nil, err
		}
		s.doc = m
		s.Initialized++
	}
	return fromMap[T](s.doc)
}

func (s *SingletonStore[T]) Save(_ context.Context, doc *T) error {
	m, err := toMap(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = m
	return nil
}
