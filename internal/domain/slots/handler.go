package slots

import (
	"net/http"

	"github.com/google/uuid"
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
	e.GET("/master-slots", h.ListMasterSlots)

	manage := admin.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	manage.POST("/slots", h.AddSlot)
	manage.POST("/reset-slots", h.ResetSlots)
	manage.DELETE("/slots/:id", h.DeleteSlot)
}

// ListMasterSlots returns a doctor's template. Without a doctor_id the
// response is an empty list, not an error, so the portal can render before
// a doctor is chosen.
func (h *Handler) ListMasterSlots(c echo.Context) error {
	doctorParam := c.QueryParam("doctor_id")
	if doctorParam == "" {
		return c.JSON(http.StatusOK, []*MasterSlot{})
	}
	doctorID, err := uuid.Parse(doctorParam)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}

	items, err := h.svc.ListByDoctor(c.Request().Context(), doctorID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load slots")
	}
	if items == nil {
		items = []*MasterSlot{}
	}
	return c.JSON(http.StatusOK, items)
}

type addSlotRequest struct {
	DoctorID uuid.UUID `json:"doctor_id"`
	SlotTime string    `json:"slot_time"`
}

func (h *Handler) AddSlot(c echo.Context) error {
	var req addSlotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DoctorID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "doctor_id is required")
	}

	slot, err := h.svc.Add(c.Request().Context(), req.DoctorID, req.SlotTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, slot)
}

type resetSlotsRequest struct {
	DoctorID uuid.UUID `json:"doctor_id"`
}

func (h *Handler) ResetSlots(c echo.Context) error {
	var req resetSlotsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DoctorID == uuid.Nil {
		return echo.NewHTTPError(http.StatusBadRequest, "doctor_id is required")
	}

	if err := h.svc.ResetDefaults(c.Request().Context(), req.DoctorID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to reset slots")
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Slots reset"})
}

func (h *Handler) DeleteSlot(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete slot")
	}
	return c.NoContent(http.StatusNoContent)
}
