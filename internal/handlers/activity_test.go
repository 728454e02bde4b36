package handlers

import (
	"net/http"
	"testing"
	"time"

	"artshare/internal/models"
	"artshare/internal/service"
	"artshare/internal/token"
)

func activityService(activity *mockActivity) *service.Service {
	return &service.Service{
		Authorization: &mockAuth{parseClaims: &token.Claims{UserID: "admin-1", Email: "admin@x.com"}},
		Activity:      activity,
	}
}

func TestGetActivityHandler(t *testing.T) {
	activity := &mockActivity{resp: []models.ActivityEvent{
		{EventID: "ev-1", Type: "LOGIN", Email: "a@x.com"},
	}}
	r := newTestRouter(activityService(activity))

	w := doAuthed(r, http.MethodGet, "/api/v1/activity?from=2026-08-01&to=2026-08-31&type=login", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	m := decodeBody(t, w)
	if int(m["count"].(float64)) != 1 {
		t.Fatalf("expected count=1, got %v", m["count"])
	}

	if activity.lastFilter.Type != "LOGIN" {
		t.Fatalf("expected type filter LOGIN, got %q", activity.lastFilter.Type)
	}
	// Date-only "to" is treated as end of that day.
	wantTo := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC).Add(24*time.Hour - time.Nanosecond)
	if !activity.lastFilter.To.Equal(wantTo) {
		t.Fatalf("expected to=%v, got %v", wantTo, activity.lastFilter.To)
	}
}

func TestGetActivityHandler_BadTimeParam(t *testing.T) {
	r := newTestRouter(activityService(&mockActivity{}))

	w := doAuthed(r, http.MethodGet, "/api/v1/activity?from=yesterday", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestGetActivityHandler_InvertedRange(t *testing.T) {
	r := newTestRouter(activityService(&mockActivity{}))

	w := doAuthed(r, http.MethodGet, "/api/v1/activity?from=2026-08-31&to=2026-08-01", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}
