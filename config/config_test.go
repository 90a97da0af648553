package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/stadtwache/stadtwache-api/models"
)

func TestNew(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	t.Setenv("ENVIRONMENT", "local")
	conf := New()

	assert.NotEmpty(t, conf)
	assert.Equal(t, "test", conf.DatabaseName)
	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("TOKEN_TTL_MINUTES", "")
	t.Setenv("QUERY_LIMIT_MAX", "")
	t.Setenv("ADMIN_USERNAME", "")
	conf := New()

	assert.Equal(t, []string{"*"}, conf.CORSOrigins)
	assert.Equal(t, 24*time.Hour, conf.TokenTTL)
	assert.Equal(t, int64(100), conf.QueryLimitMax)
	assert.Equal(t, "admin", conf.AdminUsername)
}

func TestNewSplitsCORSOrigins(t *testing.T) {
	t.Setenv("ENVIRONMENT", "local")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,")
	conf := New()

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, conf.CORSOrigins)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	var body models.ErrorMessageResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "error it borked", body.Response.Message)
	assert.Equal(t, "bad request", body.Response.Error)
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}
