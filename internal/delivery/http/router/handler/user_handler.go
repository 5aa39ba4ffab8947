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

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// CreateUserRequest represents the request body for registering an account
type CreateUserRequest struct {
	ID          string              `json:"id"`
	Name        string              `json:"name" validate:"required"`
	Role        string              `json:"role" validate:"required,oneof=chw facility_doctor facility_nurse facility_admin"`
	Phone       string              `json:"phone"`
	Village     string              `json:"village"`
	Block       string              `json:"block"`
	District    string              `json:"district"`
	State       string              `json:"state"`
	FacilityID  string              `json:"facility_id"`
	Secret      string              `json:"secret" validate:"required,min=6"`
	Performance *entity.Performance `json:"performance,omitempty"`
}

// UpdateUserRequest represents the request body for updating an account
type UpdateUserRequest struct {
	Name        string              `json:"name" validate:"required"`
	Role        string              `json:"role" validate:"required,oneof=chw facility_doctor facility_nurse facility_admin"`
	Phone       string              `json:"phone"`
	Village     string              `json:"village"`
	Block       string              `json:"block"`
	District    string              `json:"district"`
	State       string              `json:"state"`
	FacilityID  string              `json:"facility_id"`
	Secret      string              `json:"secret" validate:"omitempty,min=6"`
	Performance *entity.Performance `json:"performance,omitempty"`
}

// CreateUser handles account registration
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		ID:          req.ID,
		Name:        req.Name,
		Role:        entity.Role(req.Role),
		Phone:       req.Phone,
		Village:     req.Village,
		Block:       req.Block,
		District:    req.District,
		State:       req.State,
		FacilityID:  req.FacilityID,
		Secret:      req.Secret,
		Performance: req.Performance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user.Secret = ""

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// GetUser handles retrieving a single account
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user.Secret = ""

	return response.Success(c, http.StatusOK, user, "User retrieved successfully")
}

// ListUsers handles listing accounts, optionally filtered by role or facility
func (h *UserHandler) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		users []entity.UserAccount
		err   error
	)
	switch {
	case c.QueryParam("role") != "":
		users, err = h.userUC.ListUsersByRole(ctx, entity.Role(c.QueryParam("role")))
		if err != nil {
			return response.BadRequest(c, "INVALID_ROLE", err.Error())
		}
	case c.QueryParam("facility_id") != "":
		users = h.userUC.ListUsersByFacility(ctx, c.QueryParam("facility_id"))
	default:
		users = h.userUC.ListUsers(ctx)
	}

	for i := range users {
		users[i].Secret = ""
	}

	return response.Success(c, http.StatusOK, users, "Users retrieved successfully")
}

// UpdateUser handles account updates
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), &usecase.UpdateUserInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Role:        entity.Role(req.Role),
		Phone:       req.Phone,
		Village:     req.Village,
		Block:       req.Block,
		District:    req.District,
		State:       req.State,
		FacilityID:  req.FacilityID,
		Secret:      req.Secret,
		Performance: req.Performance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user.Secret = ""

	return response.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser handles account removal from the local store
func (h *UserHandler) DeleteUser(c echo.Context) error {
	if err := h.userUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}
