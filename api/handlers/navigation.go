package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/stadtwache/stadtwache-api/models"
)

// Navigation adds full replacement to the navigation CRUD routes
type Navigation struct {
	Content[models.NavigationItem, *models.NavigationItem]
}

type navigationBody struct {
	Items []json.RawMessage `json:"items"`
}

// ReplaceHandler deletes the whole navigation and stores the given list in its
// place. Items without explicit orders keep their position in the list.
func (n Navigation) ReplaceHandler(w http.ResponseWriter, r *http.Request) {
	var body navigationBody
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}

	items := make([]models.NavigationItem, len(body.Items))
	ordered := false
	created := now()
	for i, raw := range body.Items {
		item := &items[i]
		item.Defaults()
		if err := unmarshalBody(raw, item); err != nil {
			writeError(w, "failed to decode request", err)
			return
		}
		item.Identify(uuid.New().String(), created)
		if err := item.Validate(); err != nil {
			writeError(w, "failed to replace navigation", models.Invalid(fmt.Sprintf("items.%d.%s", i, fieldOf(err)), "%s", messageOf(err)))
			return
		}
		ordered = ordered || item.Order != 0
	}
	if !ordered {
		for i := range items {
			items[i].Order = i
		}
	}

	if err := n.DB.ReplaceAll(r.Context(), items); err != nil {
		writeError(w, "failed to replace navigation", err)
		return
	}
	writeJSON(w, http.StatusOK, models.NavigationUpdate{Items: items})
}

func fieldOf(err error) string {
	if verr, ok := err.(*models.ValidationError); ok {
		return verr.Field
	}
	return ""
}

func messageOf(err error) string {
	if verr, ok := err.(*models.ValidationError); ok {
		return verr.Message
	}
	return err.Error()
}
