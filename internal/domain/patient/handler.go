package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opdclinic/opdclinic/internal/platform/auth"
	"github.com/opdclinic/opdclinic/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(e *echo.Echo, admin *echo.Group) {
	e.POST("/save-user", h.SaveUser)
	e.GET("/patient/profile/:uid", h.GetProfile)
	e.PUT("/patient/profile/:uid", h.UpdateProfile)
	e.POST("/patient/upload-photo", h.UploadPhoto)

	admin.GET("/patients", h.ListPatients, auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor))
}

type saveUserRequest struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// SaveUser records a portal sign-in; repeats are no-ops.
func (h *Handler) SaveUser(c echo.Context) error {
	var req saveUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p := &Patient{UserID: req.UserID, Name: req.Name, Email: req.Email}
	if err := h.svc.Save(c.Request().Context(), p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User saved"})
}

func (h *Handler) GetProfile(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load profile")
	}
	return c.JSON(http.StatusOK, p)
}

type updateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p := &Patient{
		UserID:  c.Param("uid"),
		Name:    req.Name,
		Phone:   req.Phone,
		Age:     req.Age,
		Gender:  req.Gender,
		Address: req.Address,
	}
	if err := h.svc.UpdateProfile(c.Request().Context(), p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Profile updated"})
}

type uploadPhotoRequest struct {
	UserID   string `json:"user_id"`
	PhotoURL string `json:"photo_url"`
}

// UploadPhoto stores the photo's URL; the image itself lives wherever the
// portal uploaded it.
func (h *Handler) UploadPhoto(c echo.Context) error {
	var req uploadPhotoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.UpdatePhoto(c.Request().Context(), req.UserID, req.PhotoURL); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Photo updated"})
}

func (h *Handler) ListPatients(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load patients")
	}
	if items == nil {
		items = []*Patient{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
