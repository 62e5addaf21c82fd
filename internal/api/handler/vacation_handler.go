package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrkit/vacation-api/internal/api/dispatch"
	"github.com/hrkit/vacation-api/internal/api/metrics"
	"github.com/hrkit/vacation-api/internal/core/domain"
	"github.com/hrkit/vacation-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// VacationHandler is the controller for the /vacations resource.
type VacationHandler struct {
	service  ports.VacationService
	validate *requestValidator
}

func NewVacationHandler(service ports.VacationService) *VacationHandler {
	return &VacationHandler{service: service, validate: newRequestValidator()}
}

// Table registers every vacation action. Built once at startup.
func (h *VacationHandler) Table() *dispatch.Table {
	t := dispatch.NewTable()
	t.Register("index", h.Index)
	t.Register("show", h.Show)
	t.Register("store", h.Store)
	t.Register("update", h.Update)
	t.Register("destroy", h.Destroy)
	t.Register("statuses", h.Statuses)
	t.Register("my", h.My)
	return t
}

type createVacationRequest struct {
	DateFrom string `json:"date_from" validate:"required,calendardate"`
	DateTo   string `json:"date_to"   validate:"required,calendardate"`
	Reason   string `json:"reason"    validate:"required,min=10"`
	// StatusID is accepted but ignored: new requests are always PENDING.
	StatusID int `json:"status_id"`
}

type updateVacationStatusRequest struct {
	StatusID *int `json:"status_id"`
}

// Index handles GET /vacations: all requests for admins (pending first,
// newest first), the caller's own for everyone else.
//
// @Summary      List vacation requests
// @Tags         vacations
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Vacation
// @Failure      401  {object}  map[string]string
// @Router       /vacations [get]
func (h *VacationHandler) Index(c echo.Context, _ dispatch.Resolution) error {
	claims, err := requireAuth(c)
	if err != nil {
		return err
	}

	vacations, err := h.service.List(c.Request().Context(), *claims)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vacations)
}

// Show handles GET /vacations/{id}. Admins may read any request,
// everyone else only their own.
func (h *VacationHandler) Show(c echo.Context, res dispatch.Resolution) error {
	claims, err := requireAuth(c)
	if err != nil {
		return err
	}

	vacation, err := h.service.Get(c.Request().Context(), *claims, res.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vacation)
}

// Store handles POST /vacations. The owner is the caller and the status is
// forced to PENDING regardless of the body.
//
// @Summary      Create a vacation request
// @Tags         vacations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createVacationRequest  true  "Request details"
// @Success      201   {object}  map[string]any
// @Failure      422   {object}  map[string][]string
// @Router       /vacations [post]
func (h *VacationHandler) Store(c echo.Context, _ dispatch.Resolution) error {
	claims, err := requireAuth(c)
	if err != nil {
		return err
	}

	var req createVacationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	errs := h.validate.collect(req)
	if msg := dateOrderError(req.DateFrom, req.DateTo); msg != "" {
		errs = append(errs, msg)
	}
	if errs != nil {
		return errs
	}

	id, err := h.service.Create(c.Request().Context(), *claims, ports.CreateVacationInput{
		DateFrom: req.DateFrom,
		DateTo:   req.DateTo,
		Reason:   req.Reason,
	})
	if err != nil {
		return err
	}

	metrics.VacationsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Vacation request created successfully",
		"id":      id,
		"status":  domain.StatusPending.String(),
	})
}

// Update handles PUT/PATCH /vacations/{id} (admin only): status change
// only. Check order: unknown id → 404, missing status_id → 400, invalid
// status_id → 422.
func (h *VacationHandler) Update(c echo.Context, res dispatch.Resolution) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	var req updateVacationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.service.UpdateStatus(c.Request().Context(), res.ID, req.StatusID); err != nil {
		return err
	}

	status := domain.VacationStatus(*req.StatusID)
	metrics.VacationStatusUpdatesTotal.WithLabelValues(status.String()).Inc()

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Vacation status updated successfully",
		"id":      res.ID,
		"status":  status.String(),
	})
}

// Destroy handles DELETE /vacations/{id} (admin only).
func (h *VacationHandler) Destroy(c echo.Context, res dispatch.Resolution) error {
	if _, err := requireRole(c, domain.RoleAdmin); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), res.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Vacation deleted successfully"})
}

// Statuses handles GET /vacations/statuses: the status reference table.
func (h *VacationHandler) Statuses(c echo.Context, _ dispatch.Resolution) error {
	if _, err := requireAuth(c); err != nil {
		return err
	}

	statuses, err := h.service.Statuses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statuses)
}

// My handles GET /vacations/my: the caller's own requests, newest first.
func (h *VacationHandler) My(c echo.Context, _ dispatch.Resolution) error {
	claims, err := requireAuth(c)
	if err != nil {
		return err
	}

	vacations, err := h.service.My(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vacations)
}

// dateOrderError reports the ordering violation when both dates parse and
// date_to precedes date_from. Format violations are reported separately by
// the field validator.
func dateOrderError(from, to string) string {
	f, errF := time.Parse(dateLayout, from)
	t, errT := time.Parse(dateLayout, to)
	if errF != nil || errT != nil {
		return ""
	}
	if t.Before(f) {
		return "End date must be after or equal to start date"
	}
	return ""
}
