package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-api/models"
)

func TestAdmin_LoginHandler(t *testing.T) {
	s := newTestServer(t)

	rr := s.send(t, "POST", "/api/admin/login", models.LoginRequest{Username: "admin", Password: "wrong"}, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	resp := decode[models.ErrorMessageResponse](t, rr)
	assert.Contains(t, resp.Response.Error, "incorrect username or password")

	rr = s.send(t, "POST", "/api/admin/login", models.LoginRequest{Username: "nobody", Password: "admin123"}, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = s.send(t, "POST", "/api/admin/login", models.LoginRequest{Username: "admin", Password: "admin123"}, false)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	token := decode[models.TokenResponse](t, rr)
	assert.Equal(t, "bearer", token.TokenType)
	assert.NotEmpty(t, token.AccessToken)

	req := httptest.NewRequest("GET", "/api/admin/me", nil)
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	rr = s.do(t, req, false)
	require.Equal(t, http.StatusOK, rr.Code)
	me := decode[map[string]interface{}](t, rr)
	assert.Equal(t, "admin", me["username"])
	assert.Equal(t, "admin@stadtwache.de", me["email"])
	assert.NotContains(t, me, "password_hash")
}

func TestAdmin_LoginHandlerAcceptsForm(t *testing.T) {
	s := newTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"admin123"}}
	req := httptest.NewRequest("POST", "/api/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := s.do(t, req, false)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NotEmpty(t, decode[models.TokenResponse](t, rr).AccessToken)
}

func TestAdmin_LoginHandlerRejectsBadBodies(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{"missing password", map[string]string{"username": "admin"}},
		{"missing username", map[string]string{"password": "admin123"}},
		{"blank username", models.LoginRequest{Username: "  ", Password: "admin123"}},
		{"malformed json", `{"username":`},
		{"wrong type", `{"username": 5, "password": "admin123"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := s.send(t, "POST", "/api/admin/login", tt.body, false)
			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())
		})
	}
}

func TestAdmin_RoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	routes := []struct{ method, path string }{
		{"GET", "/api/admin/me"},
		{"GET", "/api/admin/news"},
		{"POST", "/api/admin/news"},
		{"PUT", "/api/admin/navigation"},
		{"PUT", "/api/admin/homepage"},
		{"GET", "/api/admin/applications"},
		{"GET", "/api/admin/reports/stats"},
		{"POST", "/api/admin/upload"},
		{"POST", "/api/admin/database/query"},
	}
	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := s.send(t, route.method, route.path, "{}", false)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)

			req := httptest.NewRequest(route.method, route.path, strings.NewReader("{}"))
			req.Header.Set("Authorization", "Bearer not-a-token")
			rr = s.do(t, req, false)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestAdmin_TokenForUnknownAdminIsRejected(t *testing.T) {
	s := newTestServer(t)

	token, err := s.tokens.IssueToken("ghost", 0)
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/api/admin/news", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := s.do(t, req, false)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRootAndHealth(t *testing.T) {
	s := newTestServer(t)

	rr := s.get(t, "/api/", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Stadtwache API", decode[models.MessageResponse](t, rr).Message)

	rr = s.get(t, "/health", false)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[models.HealthCheckResponse](t, rr).Alive)

	rr = s.get(t, "/api/does-not-exist", false)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
