package staff

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/opdclinic/opdclinic/internal/platform/auth"
)

var testJWTSecret = []byte("test-secret")

func newTestHandler(repo *mockRepo) *Handler {
	return NewHandler(NewService(repo), testJWTSecret, "deploy-secret")
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin_IssuesToken(t *testing.T) {
	repo := newMockRepo()
	seedAccount(repo, "asha", "s3cret", auth.RoleAdmin)
	h := newTestHandler(repo)

	c, rec := postJSON("/admin/login", `{"username":"asha","password":"s3cret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := auth.ParseToken(testJWTSecret, resp.Token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Role != auth.RoleAdmin {
		t.Errorf("expected admin role in claims, got %s", claims.Role)
	}
}

func TestLogin_BadPassword(t *testing.T) {
	repo := newMockRepo()
	seedAccount(repo, "asha", "s3cret", auth.RoleAdmin)
	h := newTestHandler(repo)

	c, _ := postJSON("/admin/login", `{"username":"asha","password":"nope"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestCreateAccount_SecretGate(t *testing.T) {
	repo := newMockRepo()
	h := newTestHandler(repo)

	c, _ := postJSON("/create-admin",
		`{"secret":"wrong","username":"x","password":"p","name":"X"}`)
	err := h.CreateAccount(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("expected 403 for wrong secret, got %v", err)
	}
	if len(repo.accounts) != 0 {
		t.Error("no account should be created on a failed gate")
	}

	c, rec := postJSON("/create-admin",
		`{"secret":"deploy-secret","username":"x","password":"p","name":"X","role":"admin"}`)
	if err := h.CreateAccount(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if len(repo.accounts) != 1 {
		t.Errorf("expected 1 account, got %d", len(repo.accounts))
	}
}

func TestCreateAccount_EmptySecretConfigured(t *testing.T) {
	h := NewHandler(NewService(newMockRepo()), testJWTSecret, "")

	c, _ := postJSON("/create-admin",
		`{"secret":"","username":"x","password":"p","name":"X"}`)
	err := h.CreateAccount(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusForbidden {
		t.Errorf("account creation must be disabled without a configured secret, got %v", err)
	}
}

func TestListDoctors_EmptyList(t *testing.T) {
	h := newTestHandler(newMockRepo())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/doctors", nil)
	rec := httptest.NewRecorder()
	if err := h.ListDoctors(e.NewContext(req, rec)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON array, got %s", body)
	}
}

func TestGetDoctorName(t *testing.T) {
	repo := newMockRepo()
	doc := seedAccount(repo, "rao", "p", auth.RoleDoctor)
	h := newTestHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(doc.ID.String())

	if err := h.GetDoctorName(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body["name"] != "Dr. rao" {
		t.Errorf("expected Dr. rao, got %s", body["name"])
	}
}
