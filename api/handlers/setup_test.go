package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-api/api"
	"github.com/stadtwache/stadtwache-api/api/handlers"
	"github.com/stadtwache/stadtwache-api/api/testhelpers"
	"github.com/stadtwache/stadtwache-api/config"
	"github.com/stadtwache/stadtwache-api/databases"
	"github.com/stadtwache/stadtwache-api/models"
	"github.com/stadtwache/stadtwache-api/storage"
)

var (
	adminHashOnce sync.Once
	adminHash     string
)

func defaultAdminHash(t *testing.T) string {
	adminHashOnce.Do(func() {
		var err error
		adminHash, err = api.HashPassword("admin123")
		require.NoError(t, err)
	})
	return adminHash
}

type recordingMailer struct {
	mu           sync.Mutex
	applications []models.Application
	feedback     []models.Feedback
	err          error
}

func (m *recordingMailer) ApplicationResponse(_ context.Context, app models.Application) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.applications = append(m.applications, app)
	return m.err
}

func (m *recordingMailer) FeedbackResponse(_ context.Context, fb models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback = append(m.feedback, fb)
	return m.err
}

type testServer struct {
	router http.Handler
	stores databases.Stores
	dir    string
	mailer *recordingMailer
	tokens *api.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	stores := testhelpers.NewStores()
	_, err := databases.EnsureDefaultAdmin(context.Background(), stores.Admins, "admin", "admin@stadtwache.de", func() (string, error) {
		return defaultAdminHash(t), nil
	})
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := storage.NewLocal(dir)
	require.NoError(t, err)

	conf := &config.Config{
		BaseURL:       "http://localhost:8001",
		TokenTTL:      24 * time.Hour,
		QueryLimitMax: 100,
	}
	s := &testServer{
		stores: stores,
		dir:    dir,
		mailer: &recordingMailer{},
		tokens: api.NewTokenManager("test-secret"),
	}
	s.router = handlers.New(conf, handlers.Services{
		Stores: stores,
		Files:  files,
		Mailer: s.mailer,
		Tokens: s.tokens,
	})
	return s
}

func (s *testServer) token(t *testing.T) string {
	t.Helper()
	token, err := s.tokens.IssueToken("admin", time.Hour)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, req *http.Request, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	if admin {
		req.Header.Set("Authorization", "Bearer "+s.token(t))
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *testServer) get(t *testing.T, path string, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, httptest.NewRequest("GET", path, nil), admin)
}

func (s *testServer) send(t *testing.T, method, path string, body interface{}, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req, admin)
}

type formFile struct {
	field    string
	filename string
	content  string
}

func multipartRequest(t *testing.T, path string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
