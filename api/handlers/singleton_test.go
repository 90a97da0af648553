package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-api/api/testhelpers"
	"github.com/stadtwache/stadtwache-api/models"
)

func TestSingleton_GetCreatesDefaultsOnce(t *testing.T) {
	s := newTestServer(t)

	rr := s.get(t, "/api/homepage", false)
	require.Equal(t, http.StatusOK, rr.Code)
	first := decode[models.HomepageContent](t, rr)
	assert.Equal(t, "Stadtwache", first.HeroTitle)
	assert.Equal(t, "110", first.EmergencyNumber)
	assert.True(t, first.ShowServices)
	assert.NotEmpty(t, first.ID)

	rr = s.get(t, "/api/admin/homepage", true)
	assert.Equal(t, first, decode[models.HomepageContent](t, rr))
	assert.Equal(t, 1, s.stores.Homepage.(*testhelpers.SingletonStore[models.HomepageContent]).Initialized)
}

func TestSingleton_UpdateIsPerFieldIdempotent(t *testing.T) {
	s := newTestServer(t)
	rr := s.get(t, "/api/homepage", false)
	before := decode[models.HomepageContent](t, rr)

	patch := map[string]interface{}{"hero_title": "Willkommen", "show_team": false}
	rr = s.send(t, "PUT", "/api/admin/homepage", patch, true)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	once := decode[models.HomepageContent](t, rr)

	rr = s.send(t, "PUT", "/api/admin/homepage", patch, true)
	require.Equal(t, http.StatusOK, rr.Code)
	twice := decode[models.HomepageContent](t, rr)

	assert.Equal(t, "Willkommen", twice.HeroTitle)
	assert.False(t, twice.ShowTeam)
	assert.Equal(t, before.HeroSubtitle, twice.HeroSubtitle)
	assert.Equal(t, before.ID, twice.ID)
	assert.Equal(t, before.CreatedAt, twice.CreatedAt)

	once.UpdatedAt = twice.UpdatedAt
	assert.Equal(t, once, twice)

	rr = s.get(t, "/api/homepage", false)
	assert.Equal(t, twice, decode[models.HomepageContent](t, rr))
}

func TestSingleton_UpdateBeforeFirstRead(t *testing.T) {
	s := newTestServer(t)

	rr := s.send(t, "PUT", "/api/admin/about", map[string]interface{}{"history": "Gegründet 1990"}, true)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	about := decode[models.AboutPage](t, rr)
	assert.Equal(t, "Gegründet 1990", about.History)
	assert.Equal(t, "Über die Stadtwache", about.Title)

	rr = s.get(t, "/api/about", false)
	assert.Equal(t, about, decode[models.AboutPage](t, rr))
}

func TestSingleton_ChatWidgetValidation(t *testing.T) {
	s := newTestServer(t)

	rr := s.send(t, "PUT", "/api/admin/chat-widget", map[string]interface{}{"position": "top-center"}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = s.send(t, "PUT", "/api/admin/chat-widget", map[string]interface{}{"position": models.WidgetBottomLeft, "enabled": false}, true)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = s.get(t, "/api/chat-widget", false)
	widget := decode[models.ChatWidget](t, rr)
	assert.Equal(t, models.WidgetBottomLeft, widget.Position)
	assert.False(t, widget.Enabled)
	assert.Equal(t, "Kontakt", widget.Title)
}

func TestSingleton_HomepageEmailValidation(t *testing.T) {
	s := newTestServer(t)

	rr := s.send(t, "PUT", "/api/admin/homepage", map[string]interface{}{"email": "kein-email"}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = s.get(t, "/api/homepage", false)
	assert.Equal(t, "info@stadtwache.de", decode[models.HomepageContent](t, rr).Email)
}

func TestSingleton_SecondPatchKeepsFirstFields(t *testing.T) {
	s := newTestServer(t)

	rr := s.send(t, "PUT", "/api/admin/homepage", map[string]interface{}{"hero_title": "Erste"}, true)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = s.send(t, "PUT", "/api/admin/homepage", map[string]interface{}{"footer_text": "Zweite"}, true)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = s.get(t, "/api/homepage", false)
	page := decode[models.HomepageContent](t, rr)
	assert.Equal(t, "Erste", page.HeroTitle)
	assert.Equal(t, "Zweite", page.FooterText)
}
