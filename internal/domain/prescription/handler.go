package prescription

import (
	"errors"
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
	e.GET("/patient/history/:id", h.PatientHistory)

	manage := admin.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	manage.POST("/prescribe", h.Prescribe)
	manage.GET("/prescription-by-appt/:id", h.GetByAppointment)
}

type prescribeRequest struct {
	AppointmentID uuid.UUID  `json:"appointment_id"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	Diagnosis     string     `json:"diagnosis"`
	Medicines     []Medicine `json:"medicines"`
	Notes         string     `json:"notes"`
}

func (h *Handler) Prescribe(c echo.Context) error {
	var req prescribeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p := &Prescription{
		AppointmentID: req.AppointmentID,
		DoctorID:      req.DoctorID,
		Diagnosis:     req.Diagnosis,
		Medicines:     req.Medicines,
		Notes:         req.Notes,
	}
	if err := h.svc.Create(c.Request().Context(), p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetByAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	detail, err := h.svc.GetByAppointment(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "no prescription for this appointment")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load prescription")
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) PatientHistory(c echo.Context) error {
	patientID := c.Param("id")
	if patientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "patient id is required")
	}

	items, err := h.svc.History(c.Request().Context(), patientID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load history")
	}
	if items == nil {
		items = []*Detail{}
	}
	return c.JSON(http.StatusOK, items)
}
