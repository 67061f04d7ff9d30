package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/charityevents-api/store"
	"github.com/careconnect/charityevents-api/store/sqlite"
)

func newAdminRouter(t *testing.T) (*gin.Engine, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	testDBSeq++
	st, err := sqlite.Open(fmt.Sprintf("file:admin%d?mode=memory&cache=shared", testDBSeq))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(context.Background()) })

	log := slog.New(slog.DiscardHandler)
	r := gin.New()
	r.POST("/api/admin/events", CreateEvent(st, log))
	r.PATCH("/api/admin/events/:id", UpdateEvent(st, log))
	r.DELETE("/api/admin/events/:id", DeleteEvent(st, log))
	r.PATCH("/api/admin/events/:id/pause", SetEventActive(st, log, false))
	r.PATCH("/api/admin/events/:id/resume", SetEventActive(st, log, true))
	return r, st
}

func doForm(t *testing.T, r *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateEvent(t *testing.T) {
	r, st := newAdminRouter(t)

	form := url.Values{
		"name":         {"Harbour Swim"},
		"description":  {"Open water swim for clean oceans"},
		"event_date":   {"2026-02-14"},
		"event_time":   {"06:30:00"},
		"location":     {"Sydney Harbour"},
		"goal_amount":  {"20000"},
		"ticket_price": {"12.50"},
	}
	w := doForm(t, r, http.MethodPost, "/api/admin/events", form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env itemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.NotZero(t, env.Data.ID)
	assert.Equal(t, "Harbour Swim", env.Data.Name)
	assert.True(t, env.Data.IsActive)

	stored, err := st.GetEvent(context.Background(), env.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-14", stored.EventDate.String())
	assert.Equal(t, "12.50", stored.TicketPrice.String())
}

func TestCreateEventValidation(t *testing.T) {
	r, _ := newAdminRouter(t)

	// missing required name
	w := doForm(t, r, http.MethodPost, "/api/admin/events", url.Values{
		"event_date": {"2026-02-14"},
		"location":   {"Sydney"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// malformed date
	w = doForm(t, r, http.MethodPost, "/api/admin/events", url.Values{
		"name":       {"Bad Date"},
		"event_date": {"14/02/2026"},
		"location":   {"Sydney"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEvent(t *testing.T) {
	r, st := newAdminRouter(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/events", url.Values{
		"name":       {"Original"},
		"event_date": {"2026-03-01"},
		"location":   {"Sydney"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created itemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doForm(t, r, http.MethodPatch,
		fmt.Sprintf("/api/admin/events/%d", created.Data.ID), url.Values{
			"name":           {"Renamed"},
			"current_amount": {"750"},
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	stored, err := st.GetEvent(context.Background(), created.Data.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Equal(t, "750.00", stored.CurrentAmount.String())
	// untouched fields survive the patch
	assert.Equal(t, "Sydney", stored.Location)
}

func TestUpdateEventNoFields(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/events", url.Values{
		"name":       {"Static"},
		"event_date": {"2026-03-01"},
		"location":   {"Sydney"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created itemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doForm(t, r, http.MethodPatch,
		fmt.Sprintf("/api/admin/events/%d", created.Data.ID), url.Values{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateEventNotFound(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := doForm(t, r, http.MethodPatch, "/api/admin/events/999", url.Values{
		"name": {"Ghost"},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPauseResume(t *testing.T) {
	r, st := newAdminRouter(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/events", url.Values{
		"name":       {"Toggle"},
		"event_date": {"2026-03-01"},
		"location":   {"Sydney"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created itemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created.Data.ID

	w = doForm(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/events/%d/pause", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	stored, err := st.GetEvent(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)

	w = doForm(t, r, http.MethodPatch, fmt.Sprintf("/api/admin/events/%d/resume", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	stored, err = st.GetEvent(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.IsActive)

	w = doForm(t, r, http.MethodPatch, "/api/admin/events/999/pause", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEventEndpoint(t *testing.T) {
	r, st := newAdminRouter(t)

	w := doForm(t, r, http.MethodPost, "/api/admin/events", url.Values{
		"name":       {"Doomed"},
		"event_date": {"2026-03-01"},
		"location":   {"Sydney"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created itemEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doForm(t, r, http.MethodDelete, fmt.Sprintf("/api/admin/events/%d", created.Data.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	_, err := st.GetEvent(context.Background(), created.Data.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	w = doForm(t, r, http.MethodDelete, "/api/admin/events/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
