package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/middleware"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/utils"

	"github.com/google/uuid"
)

const (
	msgInvalidBody      = "invalid request body"
	msgValidationFailed = "validation failed"
	msgInternal         = "internal server error"
)

// writeServiceError отвечает клиенту по ошибке сервиса. Неизвестные ошибки логируются.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, op string) {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.WriteValidationError(w, msgValidationFailed, ve.Fields)
	case errors.Is(err, entities.ErrShipmentNotFound):
		utils.WriteError(w, "Shipment not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUserNotFound):
		utils.WriteError(w, "User not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrEmailTaken):
		utils.WriteError(w, "Email already in use", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCredentials):
		utils.WriteError(w, "Invalid credentials", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidPassword):
		utils.WriteError(w, "Current password is incorrect", http.StatusBadRequest)
	default:
		logger.ErrorContext(ctx, "failed to "+op, slog.Any("error", err))
		utils.WriteError(w, msgInternal, http.StatusInternalServerError)
	}
}

// callerID достает пользователя, установленного middleware.Auth.
func callerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := middleware.UserID(r.Context())
	if !ok {
		utils.WriteError(w, "Not authorized", http.StatusUnauthorized)
	}
	return id, ok
}

// parseDate принимает RFC 3339 или дату без времени.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, value)
}
