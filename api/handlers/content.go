package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

// Content serves the CRUD routes shared by every content kind
type Content[T any, PT models.EntityPtr[T]] struct {
	DB databases.ContentDatabase[T]
}

// ListHandler returns the visible documents in their public order
func (c Content[T, PT]) ListHandler(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, databases.ListOptions{VisibleOnly: true})
}

// ListAdminHandler returns every document, including drafts and inactive ones
func (c Content[T, PT]) ListAdminHandler(w http.ResponseWriter, r *http.Request) {
	c.list(w, r, databases.ListOptions{})
}

func (c Content[T, PT]) list(w http.ResponseWriter, r *http.Request, opts databases.ListOptions) {
	docs, err := c.DB.List(r.Context(), opts)
	if err != nil {
		writeError(w, "failed to list documents", err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// GetHandler returns one visible document
func (c Content[T, PT]) GetHandler(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, true)
}

// GetAdminHandler returns one document regardless of visibility
func (c Content[T, PT]) GetAdminHandler(w http.ResponseWriter, r *http.Request) {
	c.get(w, r, false)
}

func (c Content[T, PT]) get(w http.ResponseWriter, r *http.Request, visibleOnly bool) {
	doc, err := c.DB.FindByID(r.Context(), mux.Vars(r)["id"], visibleOnly)
	if err != nil {
		writeError(w, "failed to get document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// CreateHandler stores a new document built from the defaults and the body
func (c Content[T, PT]) CreateHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := c.decodeNew(r)
	if err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	if err := c.insert(r.Context(), doc); err != nil {
		writeError(w, "failed to create document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// UpdateHandler applies the fields present in the body to a stored document
func (c Content[T, PT]) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, "failed to read request", err)
		return
	}
	doc, err := c.update(r.Context(), mux.Vars(r)["id"], body)
	if err != nil {
		writeError(w, "failed to update document", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// DeleteHandler removes a stored document
func (c Content[T, PT]) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if err := c.DB.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, "failed to delete document", err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "deleted"})
}

func (c Content[T, PT]) decodeNew(r *http.Request) (PT, error) {
	doc := PT(new(T))
	doc.Defaults()
	if err := decodeJSON(r, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// prepare assigns the server owned fields of a new document and validates it
func (c Content[T, PT]) prepare(doc PT) error {
	created := now()
	doc.Identify(uuid.New().String(), created)
	doc.Touch(created)
	return doc.Validate()
}

func (c Content[T, PT]) insert(ctx context.Context, doc PT) error {
	if err := c.prepare(doc); err != nil {
		return err
	}
	return c.DB.Insert(ctx, (*T)(doc))
}

func (c Content[T, PT]) update(ctx context.Context, id string, body []byte) (PT, error) {
	stored, err := c.DB.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	doc := PT(stored)
	storedID, createdAt := doc.Identity()
	if err := unmarshalBody(body, doc); err != nil {
		return nil, err
	}
	doc.Identify(storedID, createdAt)
	doc.Touch(now())
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := c.DB.Replace(ctx, storedID, (*T)(doc)); err != nil {
		return nil, err
	}
	return doc, nil
}

// reload returns a document after a partial update
func (c Content[T, PT]) reload(ctx context.Context, id string) (PT, error) {
	doc, err := c.DB.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return PT(doc), nil
}
