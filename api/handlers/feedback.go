package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/mailer"
	"github.com/stadtwache/stadtwache-api/models"
)

// Feedback handles citizen feedback and the admin replies to it
type Feedback struct {
	Content[models.Feedback, *models.Feedback]
	Mailer mailer.Mailer
}

// CreateHandler stores new feedback as unread
func (f Feedback) CreateHandler(w http.ResponseWriter, r *http.Request) {
	doc, err := f.decodeNew(r)
	if err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	doc.Status = models.FeedbackNew
	doc.AdminResponse = ""

	if err := f.insert(r.Context(), doc); err != nil {
		writeError(w, "failed to create feedback", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// RespondHandler stores the admin reply and always marks the feedback reviewed
func (f Feedback) RespondHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var resp models.FeedbackResponse
	if err := decodeJSON(r, &resp); err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	if err := resp.Validate(); err != nil {
		writeError(w, "failed to respond to feedback", err)
		return
	}

	err := f.DB.Set(r.Context(), id, bson.M{
		"admin_response": resp.AdminResponse,
		"status":         models.FeedbackReviewed,
	})
	if err != nil {
		writeError(w, "failed to respond to feedback", err)
		return
	}
	doc, err := f.reload(r.Context(), id)
	if err != nil {
		writeError(w, "failed to get feedback", err)
		return
	}

	if err := f.Mailer.FeedbackResponse(r.Context(), *doc); err != nil {
		zap.S().With(err).Warnw("failed to send feedback response", "id", id)
	}
	writeJSON(w, http.StatusOK, doc)
}
