package handlers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/api"
	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

var errInvalidCredentials = fmt.Errorf("%w: incorrect username or password", models.ErrUnauthorized)

// Admin represents the admin handler
type Admin struct {
	DB       databases.AdminDatabase
	Tokens   *api.TokenManager
	TokenTTL time.Duration
}

// LoginHandler exchanges admin credentials, sent as JSON or as a form, for a
// bearer token
func (a Admin) LoginHandler(w http.ResponseWriter, r *http.Request) {
	req, err := loginRequest(r)
	if err != nil {
		writeError(w, "failed to decode request", err)
		return
	}
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		writeError(w, "username and password required", models.Invalid("username", "username and password required"))
		return
	}

	admin, err := a.DB.FindByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			err = errInvalidCredentials
		}
		writeError(w, "login failed", err)
		return
	}
	if !api.VerifyPassword(req.Password, admin.PasswordHash) {
		zap.S().Infow("failed admin login", "username", username)
		writeError(w, "login failed", errInvalidCredentials)
		return
	}

	token, err := a.Tokens.IssueToken(admin.Username, a.TokenTTL)
	if err != nil {
		writeError(w, "token generation failed", err)
		return
	}
	writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func loginRequest(r *http.Request) (models.LoginRequest, error) {
	var req models.LoginRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxJSONBody); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return req, invalidBody(err)
		}
		req.Username = r.FormValue("username")
		req.Password = r.FormValue("password")
		return req, nil
	default:
		err := decodeJSON(r, &req)
		return req, err
	}
}

// MeHandler returns the authenticated admin
func (a Admin) MeHandler(w http.ResponseWriter, r *http.Request) {
	admin, ok := api.AdminFromContext(r.Context())
	if !ok {
		writeError(w, "unauthorized", api.ErrInvalidToken)
		return
	}
	writeJSON(w, http.StatusOK, admin)
}
