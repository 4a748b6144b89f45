package staff

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/opdclinic/opdclinic/internal/platform/auth"
)

type Handler struct {
	svc         *Service
	jwtSecret   []byte
	adminSecret string
}

func NewHandler(svc *Service, jwtSecret []byte, adminSecret string) *Handler {
	return &Handler{svc: svc, jwtSecret: jwtSecret, adminSecret: adminSecret}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.GET("/doctors", h.ListDoctors)
	e.GET("/doctors/:id/name", h.GetDoctorName)
	e.POST("/admin/login", h.Login)
	e.POST("/create-admin", h.CreateAccount)

	admin.GET("/staff", h.ListStaff, auth.RequireRole(auth.RoleAdmin))
	admin.DELETE("/staff/:id", h.DeleteStaff, auth.RequireRole(auth.RoleSuper))
}

func (h *Handler) ListDoctors(c echo.Context) error {
	doctors, err := h.svc.ListDoctors(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load doctors")
	}
	if doctors == nil {
		doctors = []*Staff{}
	}
	return c.JSON(http.StatusOK, doctors)
}

func (h *Handler) GetDoctorName(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	name, err := h.svc.GetName(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"name": name})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.svc.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	token, err := auth.IssueToken(h.jwtSecret, account.ID.String(), account.Name, account.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		ID:    account.ID,
		Name:  account.Name,
		Role:  account.Role,
	})
}

type createAccountRequest struct {
	Secret   string `json:"secret"`
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	Role     string `json:"role"`
}

// CreateAccount provisions a staff account. It is gated by the deployment
// admin secret rather than a session so the first account can be created.
func (h *Handler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if h.adminSecret == "" ||
		subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.adminSecret)) != 1 {
		return echo.NewHTTPError(http.StatusForbidden, "invalid secret")
	}

	account := &Staff{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Degree:   req.Degree,
		Role:     req.Role,
	}
	if err := h.svc.Create(c.Request().Context(), account); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, account)
}

func (h *Handler) ListStaff(c echo.Context) error {
	accounts, err := h.svc.List(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load staff")
	}
	if accounts == nil {
		accounts = []*Staff{}
	}
	return c.JSON(http.StatusOK, accounts)
}

func (h *Handler) DeleteStaff(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete staff")
	}
	return c.NoContent(http.StatusNoContent)
}
