package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/pkg/utils"

	"github.com/google/uuid"
)

type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

type UserFinder interface {
	Profile(ctx context.Context, userID uuid.UUID) (entities.User, error)
}

type userIDKey struct{}

// UserID returns the authenticated caller stored by Auth.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}

// WithUserID stores the caller id in ctx.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// Auth rejects requests without a valid bearer token of an existing user.
func Auth(logger *slog.Logger, tokens TokenParser, users UserFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, "Not authorized, no token", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Parse(token)
			if err != nil {
				utils.WriteError(w, "Not authorized, token failed", http.StatusUnauthorized)
				return
			}

			_, err = users.Profile(r.Context(), userID)
			if errors.Is(err, entities.ErrUserNotFound) {
				utils.WriteError(w, "Not authorized, user not found", http.StatusUnauthorized)
				return
			}
			if err != nil {
				logger.ErrorContext(r.Context(), "failed to load user", slog.String("user_id", userID.String()), slog.Any("error", err))
				utils.WriteError(w, "internal server error", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
