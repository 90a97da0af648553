package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-api/api"
	"github.com/stadtwache/stadtwache-api/api/testhelpers"
	"github.com/stadtwache/stadtwache-api/config"
	"github.com/stadtwache/stadtwache-api/databases/mocks"
	"github.com/stadtwache/stadtwache-api/mailer"
	"github.com/stadtwache/stadtwache-api/models"
	"github.com/stadtwache/stadtwache-api/storage"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.Invalid("title", "field required"), http.StatusUnprocessableEntity},
		{fmt.Errorf("wrapped: %w", models.Invalid("rating", "out of range")), http.StatusUnprocessableEntity},
		{storage.ErrInvalidExtension, http.StatusBadRequest},
		{api.ErrTokenExpired, http.StatusUnauthorized},
		{fmt.Errorf("%w: news", models.ErrNotFound), http.StatusNotFound},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
	}
}

func TestDatabase_Limit(t *testing.T) {
	assert.Equal(t, int64(50), Database{}.limit(0))
	assert.Equal(t, int64(100), Database{}.limit(1000))
	assert.Equal(t, int64(20), Database{MaxLimit: 20}.limit(0))
	assert.Equal(t, int64(7), Database{MaxLimit: 20}.limit(7))
}

func TestApp_InitializeRoutesWrapsRouter(t *testing.T) {
	dir := t.TempDir()
	files, err := storage.NewLocal(dir)
	require.NoError(t, err)

	a := App{Config: config.Config{CORSOrigins: []string{"https://stadtwache.de"}}}
	a.initializeRoutes(Services{
		Stores: testhelpers.NewStores(),
		Files:  files,
		Mailer: mailer.NoOp{},
		Tokens: api.NewTokenManager("secret"),
	})

	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(api.RequestIDHeader))
	assert.JSONEq(t, `{"alive":true}`, rr.Body.String())
}

func TestApp_Close(t *testing.T) {
	assert.NoError(t, (&App{}).Close(context.Background()))

	client := &mocks.ClientHelper{}
	client.On("Disconnect", mock.Anything).Return(nil).Once()
	a := &App{client: client}
	assert.NoError(t, a.Close(context.Background()))
	client.AssertExpectations(t)

	failing := &mocks.ClientHelper{}
	failing.On("Disconnect", mock.Anything).Return(errors.New("already closed"))
	assert.EqualError(t, (&App{client: failing}).Close(context.Background()), "already closed")
}
