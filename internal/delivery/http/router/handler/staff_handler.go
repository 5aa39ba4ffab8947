package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"outreach/internal/delivery/http/response"
	"outreach/internal/domain/entity"
	"outreach/internal/usecase"
)

// StaffHandlerParams holds dependencies for StaffHandler, injected by Fx.
type StaffHandlerParams struct {
	fx.In

	StaffUC usecase.StaffUsecase
	Logger  *slog.Logger
}

// StaffHandler holds dependencies for staff directory handlers
type StaffHandler struct {
	staffUC usecase.StaffUsecase
	logger  *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{
		staffUC: params.StaffUC,
		logger:  params.Logger,
	}
}

// ListStaff handles listing the directory with optional role/facility filters
func (h *StaffHandler) ListStaff(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		staff []entity.StaffRecord
		err   error
	)
	switch {
	case c.QueryParam("role") != "":
		staff, err = h.staffUC.ListStaffByRole(ctx, entity.Role(c.QueryParam("role")))
		if err != nil {
			return response.BadRequest(c, "INVALID_ROLE", err.Error())
		}
	case c.QueryParam("facility_id") != "":
		staff = h.staffUC.ListStaffByFacility(ctx, c.QueryParam("facility_id"))
	default:
		staff = h.staffUC.ListStaff(ctx)
	}

	return response.Success(c, http.StatusOK, staff, "Staff retrieved successfully")
}

// GetStaff handles retrieving a single directory entry
func (h *StaffHandler) GetStaff(c echo.Context) error {
	record, err := h.staffUC.GetStaff(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record, "Staff entry retrieved successfully")
}

// AddManualEntry handles inserting a staff entry with no backing account
func (h *StaffHandler) AddManualEntry(c echo.Context) error {
	var record entity.StaffRecord
	if err := c.Bind(&record); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	added, err := h.staffUC.AddManualEntry(c.Request().Context(), record)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, added, "Staff entry added successfully")
}

// UpdateManualEntry handles replacing a manual staff entry
func (h *StaffHandler) UpdateManualEntry(c echo.Context) error {
	var record entity.StaffRecord
	if err := c.Bind(&record); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}
	record.ID = c.Param("id")

	updated, err := h.staffUC.UpdateManualEntry(c.Request().Context(), record)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated, "Staff entry updated successfully")
}

// DeleteManualEntry handles removing a manual staff entry
func (h *StaffHandler) DeleteManualEntry(c echo.Context) error {
	if err := h.staffUC.DeleteManualEntry(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Staff entry deleted successfully")
}
