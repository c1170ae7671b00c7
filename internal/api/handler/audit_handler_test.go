package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orangeplan/user-management/internal/core/ports"
)

type stubAuditReader struct {
	recentFn func(ctx context.Context, n int64) ([]ports.AuditEvent, error)
}

func (s *stubAuditReader) Recent(ctx context.Context, n int64) ([]ports.AuditEvent, error) {
	return s.recentFn(ctx, n)
}

func auditRequest(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuditHandler_Recent(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	reader := &stubAuditReader{
		recentFn: func(ctx context.Context, n int64) ([]ports.AuditEvent, error) {
			if n != 50 {
				t.Fatalf("expected default limit 50, got %d", n)
			}
			// Newest first, as the trail stores them.
			return []ports.AuditEvent{
				{Action: "login", Username: "alice", Outcome: "success", At: now},
				{Action: "login", Username: "alice", Outcome: "invalid_password", At: now.Add(-time.Minute)},
			}, nil
		},
	}
	h := NewAuditHandler(reader)

	c, rec := auditRequest(newTestEcho(), "/audit")
	if err := h.Recent(c); err != nil {
		t.Fatalf("recent: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}

	var events []ports.AuditEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Outcome != "success" || !events[0].At.After(events[1].At) {
		t.Fatalf("events must be newest first: %+v", events)
	}
}

func TestAuditHandler_Recent_LimitParam(t *testing.T) {
	var got int64
	reader := &stubAuditReader{
		recentFn: func(ctx context.Context, n int64) ([]ports.AuditEvent, error) {
			got = n
			return nil, nil
		},
	}
	h := NewAuditHandler(reader)

	c, _ := auditRequest(newTestEcho(), "/audit?limit=10")
	if err := h.Recent(c); err != nil {
		t.Fatalf("recent: %v", err)
	}
	if got != 10 {
		t.Fatalf("expected limit 10, got %d", got)
	}

	// Oversized limits are capped rather than rejected.
	c, _ = auditRequest(newTestEcho(), "/audit?limit=99999")
	if err := h.Recent(c); err != nil {
		t.Fatalf("recent: %v", err)
	}
	if got != 1000 {
		t.Fatalf("expected capped limit 1000, got %d", got)
	}
}

func TestAuditHandler_Recent_BadLimit(t *testing.T) {
	h := NewAuditHandler(&stubAuditReader{})

	for _, target := range []string{"/audit?limit=abc", "/audit?limit=0", "/audit?limit=-5"} {
		c, _ := auditRequest(newTestEcho(), target)
		err := h.Recent(c)
		he, ok := err.(*echo.HTTPError)
		if !ok || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", target, err)
		}
	}
}

func TestAuditHandler_Recent_ReaderErrorPropagates(t *testing.T) {
	readerErr := errors.New("redis: connection refused")
	reader := &stubAuditReader{
		recentFn: func(ctx context.Context, n int64) ([]ports.AuditEvent, error) {
			return nil, readerErr
		},
	}
	h := NewAuditHandler(reader)

	c, _ := auditRequest(newTestEcho(), "/audit")
	if err := h.Recent(c); err != readerErr {
		t.Fatalf("expected reader error, got %v", err)
	}
}
