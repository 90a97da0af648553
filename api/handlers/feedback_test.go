package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-api/models"
)

func feedbackBody(rating interface{}) map[string]interface{} {
	return map[string]interface{}{
		"name":    "Erika Musterfrau",
		"email":   "erika@example.de",
		"subject": "Lob",
		"message": "Sehr freundliche Beamte.",
		"rating":  rating,
	}
}

func TestFeedback_CreateRatingBounds(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		rating interface{}
		status int
	}{
		{0, http.StatusUnprocessableEntity},
		{1, http.StatusOK},
		{5, http.StatusOK},
		{6, http.StatusUnprocessableEntity},
		{-1, http.StatusUnprocessableEntity},
		{"five", http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.rating), func(t *testing.T) {
			rr := s.send(t, "POST", "/api/feedback", feedbackBody(tt.rating), false)
			assert.Equal(t, tt.status, rr.Code, rr.Body.String())
		})
	}

	rr := s.get(t, "/api/admin/feedback", true)
	assert.Len(t, decode[[]models.Feedback](t, rr), 2)
}

func TestFeedback_CreateStartsNew(t *testing.T) {
	s := newTestServer(t)

	body := feedbackBody(4)
	body["status"] = models.FeedbackReviewed
	body["admin_response"] = "schon beantwortet"
	rr := s.send(t, "POST", "/api/feedback", body, false)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	fb := decode[models.Feedback](t, rr)
	assert.Equal(t, models.FeedbackNew, fb.Status)
	assert.Empty(t, fb.AdminResponse)
	assert.NotEmpty(t, fb.ID)
}

func TestFeedback_CreateRequiresFields(t *testing.T) {
	s := newTestServer(t)

	for _, field := range []string{"name", "email", "subject", "message", "rating"} {
		t.Run(field, func(t *testing.T) {
			body := feedbackBody(3)
			delete(body, field)
			rr := s.send(t, "POST", "/api/feedback", body, false)
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		})
	}
}

func TestFeedback_RespondHandler(t *testing.T) {
	s := newTestServer(t)
	fb := decode[models.Feedback](t, s.send(t, "POST", "/api/feedback", feedbackBody(5), false))

	rr := s.send(t, "PUT", "/api/admin/feedback/"+fb.ID+"/respond", models.FeedbackResponse{AdminResponse: "Vielen Dank!"}, true)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	responded := decode[models.Feedback](t, rr)
	assert.Equal(t, models.FeedbackReviewed, responded.Status)
	assert.Equal(t, "Vielen Dank!", responded.AdminResponse)
	assert.Equal(t, fb.Rating, responded.Rating)

	rr = s.get(t, "/api/admin/feedback/"+fb.ID, true)
	assert.Equal(t, responded, decode[models.Feedback](t, rr))

	require.Len(t, s.mailer.feedback, 1)
	assert.Equal(t, "erika@example.de", s.mailer.feedback[0].Email)

	rr = s.send(t, "PUT", "/api/admin/feedback/"+fb.ID+"/respond", models.FeedbackResponse{}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	rr = s.send(t, "PUT", "/api/admin/feedback/missing/respond", models.FeedbackResponse{AdminResponse: "x"}, true)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestFeedback_Delete(t *testing.T) {
	s := newTestServer(t)
	fb := decode[models.Feedback](t, s.send(t, "POST", "/api/feedback", feedbackBody(2), false))

	rr := s.send(t, "DELETE", "/api/admin/feedback/"+fb.ID, nil, true)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = s.get(t, "/api/admin/feedback", true)
	assert.JSONEq(t, "[]", rr.Body.String())
}
