package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"outreach/internal/delivery/http/response"
	"outreach/internal/usecase"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	SyncUC usecase.SyncUsecase
	Logger *slog.Logger
}

// SyncHandler holds dependencies for reconciliation and maintenance handlers
type SyncHandler struct {
	syncUC usecase.SyncUsecase
	logger *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		syncUC: params.SyncUC,
		logger: params.Logger,
	}
}

// Status reports the connectivity flag
func (h *SyncHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]bool{
		"online": h.syncUC.Online(),
	}, "Sync status retrieved successfully")
}

// RefreshFromRemote forces a fresh full snapshot of both synced collections
func (h *SyncHandler) RefreshFromRemote(c echo.Context) error {
	if err := h.syncUC.RefreshFromRemote(c.Request().Context()); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "REMOTE_UNAVAILABLE", "Failed to refresh from remote", err.Error())
	}

	return response.Success(c, http.StatusOK, nil, "Remote refresh started")
}

// RefreshFromLocalStore re-reads the synced collections from durable storage
func (h *SyncHandler) RefreshFromLocalStore(c echo.Context) error {
	h.syncUC.RefreshFromLocalStore(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Local refresh completed")
}

// StorageInfo reports the local storage footprint
func (h *SyncHandler) StorageInfo(c echo.Context) error {
	info := h.syncUC.GetStorageInfo(c.Request().Context())

	return response.Success(c, http.StatusOK, info, "Storage info retrieved successfully")
}
