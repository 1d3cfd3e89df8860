package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"doctor-slot-sync/internal/converter"
	"doctor-slot-sync/internal/delivery/dto"
	"doctor-slot-sync/internal/domain/entity"
	"doctor-slot-sync/internal/service"
	"doctor-slot-sync/internal/usecase"
	"doctor-slot-sync/pkg/response"
	"doctor-slot-sync/pkg/validator"
)

const defaultFailureLimit = 50

// SyncRunner starts synchronization runs and reports the last one
type SyncRunner interface {
	Run(ctx context.Context, trigger string) (*entity.SyncStatus, error)
	LastStatus(ctx context.Context) (*entity.SyncStatus, error)
}

type SyncHandler struct {
	runner             SyncRunner
	syncFailureUsecase usecase.SyncFailureUsecase
	validator          *validator.CustomValidator
}

func NewSyncHandler(runner SyncRunner, syncFailureUsecase usecase.SyncFailureUsecase, validator *validator.CustomValidator) *SyncHandler {
	return &SyncHandler{
		runner:             runner,
		syncFailureUsecase: syncFailureUsecase,
		validator:          validator,
	}
}

// TriggerSync runs a synchronization cycle, joining the in-flight one if any
func (h *SyncHandler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	// a client disconnect must not abort the run other triggers may share
	status, err := h.runner.Run(context.WithoutCancel(r.Context()), service.TriggerHTTP)
	if err != nil {
		if errors.Is(err, usecase.ErrFatalFetch) {
			response.BadGateway(w, "Failed to fetch doctors from vendor", converter.SyncStatusToResponse(status))
			return
		}
		response.InternalServerError(w, "Failed to synchronize doctor slots")
		return
	}

	response.Success(w, http.StatusAccepted, "Synchronization finished", converter.SyncStatusToResponse(status))
}

func (h *SyncHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.runner.LastStatus(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrSyncStatusNotFound) {
			response.NotFound(w, "No synchronization has run yet")
			return
		}
		response.InternalServerError(w, "Failed to get synchronization status")
		return
	}

	response.Success(w, http.StatusOK, "Synchronization status retrieved successfully", converter.SyncStatusToResponse(status))
}

func (h *SyncHandler) GetFailures(w http.ResponseWriter, r *http.Request) {
	query := dto.ListSyncFailuresQuery{Limit: defaultFailureLimit}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		query.Limit = limit
	}

	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	failures, err := h.syncFailureUsecase.GetRecentFailures(r.Context(), query.Limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get synchronization failures")
		return
	}

	response.Success(w, http.StatusOK, "Synchronization failures retrieved successfully", failures)
}
