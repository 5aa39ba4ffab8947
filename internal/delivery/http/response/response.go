// Package response provides the unified API response envelope.
package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"outreach/internal/domain/repository"
	"outreach/internal/usecase/impl"
)

// Response unified API response structure
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`    // Business error code, e.g., "PATIENT_NOT_FOUND"
	Details string `json:"details"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// BindingError binding error response
func BindingError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, "")
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, "")
}

// NotFound 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, "")
}

// Conflict 409 error
func Conflict(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusConflict, errorCode, message, "")
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, "")
}

// HandleAppError maps application errors onto the response envelope.
// Unrecognized errors become a 500 without leaking internals.
func HandleAppError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		return NotFound(c, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, repository.ErrPatientNotFound):
		return NotFound(c, "PATIENT_NOT_FOUND", "Patient not found")
	case errors.Is(err, repository.ErrItemNotFound):
		return NotFound(c, "ITEM_NOT_FOUND", "Inventory item not found")
	case errors.Is(err, repository.ErrStaffNotFound):
		return NotFound(c, "STAFF_NOT_FOUND", "Staff entry not found")
	case errors.Is(err, repository.ErrCategoryNotFound):
		return NotFound(c, "CATEGORY_NOT_FOUND", "Budget category not found")
	case errors.Is(err, repository.ErrDuplicateUser):
		return Conflict(c, "DUPLICATE_USER", "User ID already registered")
	case errors.Is(err, repository.ErrDuplicatePatient):
		return Conflict(c, "DUPLICATE_PATIENT", "Patient ID already registered")
	case errors.Is(err, repository.ErrDuplicateItem):
		return Conflict(c, "DUPLICATE_ITEM", "Inventory item ID already registered")
	case errors.Is(err, repository.ErrDuplicateStaff):
		return Conflict(c, "DUPLICATE_STAFF", "Staff entry ID already registered")
	case errors.Is(err, impl.ErrInvalidCredentials):
		return Unauthorized(c, "INVALID_CREDENTIALS", "Invalid credentials")
	default:
		return InternalServerError(c, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}
