package portal

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestGetStatus(t *testing.T) {
	repo := newMockSettingRepo()
	repo.settings[KeyBookingStatus] = StatusOpen
	h := NewHandler(NewService(repo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GetStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["status"] != StatusOpen {
		t.Errorf("expected open, got %s", body["status"])
	}
}

func TestToggleStatus(t *testing.T) {
	repo := newMockSettingRepo()
	h := NewHandler(NewService(repo))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/toggle-status",
		strings.NewReader(`{"status":"open"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ToggleStatus(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.settings[KeyBookingStatus] != StatusOpen {
		t.Errorf("expected stored status open, got %s", repo.settings[KeyBookingStatus])
	}
}

func TestToggleStatus_InvalidValue(t *testing.T) {
	h := NewHandler(NewService(newMockSettingRepo()))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/toggle-status",
		strings.NewReader(`{"status":"sometimes"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ToggleStatus(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
