package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/stadtwache/stadtwache-api/config"
	"github.com/stadtwache/stadtwache-api/models"
)

const (
	maxJSONBody   = 1 << 20
	maxUploadSize = 32 << 20
)

// statusFor maps an error to the status code of its taxonomy entry
func statusFor(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err with the status of its taxonomy entry. The raw error
// text is passed through to the caller.
func writeError(w http.ResponseWriter, message string, err error) {
	config.ErrorStatus(message, statusFor(err), w, err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func readBody(r *http.Request) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		return nil, invalidBody(err)
	}
	return b, nil
}

// decodeJSON unmarshals the request body over v. Fields missing from the body
// keep the value v already holds, and so do fields sent as null.
func decodeJSON(r *http.Request, v interface{}) error {
	b, err := readBody(r)
	if err != nil {
		return err
	}
	return unmarshalBody(b, v)
}

func unmarshalBody(b []byte, v interface{}) error {
	if err := json.Unmarshal(b, v); err != nil {
		return invalidBody(err)
	}
	return nil
}

func invalidBody(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return models.Invalid(typeErr.Field, "expected %s", typeErr.Type)
	}
	return models.Invalid("body", "%s", err.Error())
}

// now is the timestamp stored on documents, truncated to what mongo keeps
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
