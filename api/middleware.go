package api

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/stadtwache/stadtwache-api/config"
	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
)

// MiddlewareDB is a struct that holds the database
type MiddlewareDB struct {
	DB     databases.AdminDatabase
	Tokens *TokenManager
}

// AdminMiddleware rejects requests without a valid bearer token for an
// existing admin and otherwise stores that admin on the request context
func (m MiddlewareDB) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			unauthorized(w, r, ErrInvalidToken)
			return
		}
		subject, err := m.Tokens.VerifyToken(token)
		if err != nil {
			unauthorized(w, r, err)
			return
		}

		ctx, cancel := WithQueryTimeout(r.Context())
		defer cancel()
		admin, err := m.DB.FindByUsername(ctx, subject)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				unauthorized(w, r, ErrUnknownSubject)
				return
			}
			config.ErrorStatus("failed to load admin", http.StatusInternalServerError, w, err)
			return
		}
		zap.S().Debugf("admin %s authenticated", admin.Username)
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), admin)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request, err error) {
	zap.S().Debugw("unauthorized", "url", r.URL.String(), "error", err)
	w.Header().Set("WWW-Authenticate", "Bearer")
	config.ErrorStatus("unauthorized", http.StatusUnauthorized, w, err)
}
