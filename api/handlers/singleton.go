package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

// Singleton serves a page configuration document that always exists
type Singleton[T any, PT models.EntityPtr[T]] struct {
	DB databases.SingletonDatabase[T]
}

func (s Singleton[T, PT]) initial() *T {
	doc := PT(new(T))
	doc.Defaults()
	created := now()
	doc.Identify(uuid.New().String(), created)
	doc.Touch(created)
	return (*T)(doc)
}

func (s Singleton[T, PT]) current(ctx context.Context) (PT, error) {
	doc, err := s.DB.Get(ctx, s.initial)
	if err != nil {
		return nil, err
	}
	return PT(doc), nil
}

// GetHandler returns the document, creating it with defaults on first read
func (s Singleton[T, PT]) GetHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := s.current(r.Context())
	if err != nil {
		writeError(w, "failed to get content", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// UpdateHandler patches the fields present in the body over the document
func (s Singleton[T, PT]) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "failed to read request", err)
		return
	}
	doc, err := s.current(r.Context())
	if err != nil {
		writeError(w, "failed to get content", err)
		return
	}

	id, createdAt := doc.Identity()
	if err := unmarshalBody(body, doc); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	doc.Identify(id, createdAt)
	doc.Touch(now())
	if err := doc.Validate(); err != nil {
		writeError(w, "failed to update content", err)
		return
	}
	if err := s.DB.Save(r.Context(), (*T)(doc)); err != nil {
		writeError(w, "failed to update content", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}
