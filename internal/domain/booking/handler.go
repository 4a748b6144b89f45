package booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/opdclinic/opdclinic/internal/platform/auth"
	"github.com/opdclinic/opdclinic/pkg/pagination"
)

type Handler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHandler(svc *Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.POST("/book", h.Book)
	e.GET("/booked-slots", h.BookedSlots)
	e.GET("/patient/appointments", h.PatientAppointments)

	manage := admin.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
	manage.GET("/appointments", h.ListAppointments)
	manage.PUT("/appointments/:id/done", h.MarkDone)
	manage.DELETE("/appointments/:id", h.DeleteAppointment)
}

type bookRequest struct {
	DoctorID    uuid.UUID `json:"doctor_id"`
	PatientID   string    `json:"patient_id"`
	PatientName string    `json:"patient_name"`
	PatientAge  int       `json:"patient_age"`
	Phone       string    `json:"phone"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	SlotTime    string    `json:"slot_time"`
}

type bookResponse struct {
	Message     string       `json:"message"`
	Appointment *Appointment `json:"appointment"`
}

func (h *Handler) Book(c echo.Context) error {
	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.svc.Book(c.Request().Context(), BookRequest{
		DoctorID:    req.DoctorID,
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		PatientAge:  req.PatientAge,
		Phone:       req.Phone,
		Description: req.Description,
		Date:        req.Date,
		SlotTime:    req.SlotTime,
	})
	if err != nil {
		// Rejections are expected outcomes and travel to the client with
		// their message. Anything else is a datastore fault: generic 500,
		// detail stays in the server log.
		switch {
		case errors.Is(err, ErrPortalClosed),
			errors.Is(err, ErrPastDate),
			errors.Is(err, ErrPastTime),
			errors.Is(err, ErrSlotTaken),
			errors.Is(err, ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			h.logger.Error().Err(err).
				Str("doctor_id", req.DoctorID.String()).
				Str("date", req.Date).
				Str("slot_time", req.SlotTime).
				Msg("booking failed")
			return echo.NewHTTPError(http.StatusInternalServerError, "could not book the slot")
		}
	}

	return c.JSON(http.StatusOK, bookResponse{Message: "Booked!", Appointment: appt})
}

func (h *Handler) BookedSlots(c echo.Context) error {
	doctorID, err := uuid.Parse(c.QueryParam("doctor_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	date := c.QueryParam("date")

	times, err := h.svc.BookedTimes(c.Request().Context(), doctorID, date)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Str("date", date).Msg("listing booked slots failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load booked slots")
	}
	if times == nil {
		times = []string{}
	}
	return c.JSON(http.StatusOK, times)
}

func (h *Handler) PatientAppointments(c echo.Context) error {
	patientID := c.QueryParam("user_id")
	if patientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	items, err := h.svc.ListByPatient(c.Request().Context(), patientID)
	if err != nil {
		h.logger.Error().Err(err).Str("patient_id", patientID).Msg("listing patient appointments failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load appointments")
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, items)
}

// ListAppointments returns one day's schedule. doctor_id narrows to one
// doctor; omitted or "all" means every doctor.
func (h *Handler) ListAppointments(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	var doctorID *uuid.UUID
	if p := c.QueryParam("doctor_id"); p != "" && p != "all" {
		id, err := uuid.Parse(p)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
		}
		doctorID = &id
	}

	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListByDate(c.Request().Context(), date, doctorID, pg.Limit, pg.Offset)
	if err != nil {
		h.logger.Error().Err(err).Str("date", date).Msg("listing appointments failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load appointments")
	}
	if items == nil {
		items = []*Appointment{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) MarkDone(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.MarkDone(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, map[string]string{"status": StatusDone})
}

func (h *Handler) DeleteAppointment(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error().Err(err).Str("appointment_id", id.String()).Msg("deleting appointment failed")
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to delete appointment")
	}
	return c.NoContent(http.StatusNoContent)
}
