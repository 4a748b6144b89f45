package portal

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opdclinic/opdclinic/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.GET("/status", h.GetStatus)
	admin.POST("/toggle-status", h.ToggleStatus, auth.RequireRole(auth.RoleAdmin))
}

// GetStatus reports whether booking is open. It is public so the patient
// portal can decide what to render before any booking attempt.
func (h *Handler) GetStatus(c echo.Context) error {
	status, err := h.svc.Status(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load booking status")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": status})
}

type toggleRequest struct {
	Status string `json:"status"`
}

func (h *Handler) ToggleStatus(c echo.Context) error {
	var req toggleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SetStatus(c.Request().Context(), req.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
}
