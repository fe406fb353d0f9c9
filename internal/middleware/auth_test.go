package middleware_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/shipment-tracker/internal/entities"
	"github.com/SergeyBogomolovv/shipment-tracker/internal/middleware"
	mocks "github.com/SergeyBogomolovv/shipment-tracker/internal/middleware/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	type MockBehavior func(tokens *mocks.MockTokenParser, users *mocks.MockUserFinder)

	testCases := []struct {
		name         string
		header       string
		mockBehavior MockBehavior
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			mockBehavior: func(tokens *mocks.MockTokenParser, users *mocks.MockUserFinder) {
				tokens.EXPECT().Parse("good").Return(userID, nil).Once()
				users.EXPECT().Profile(mock.Anything, userID).Return(entities.User{ID: userID}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String(),
		},
		{
			name:         "no header",
			mockBehavior: func(*mocks.MockTokenParser, *mocks.MockUserFinder) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     "Not authorized, no token",
		},
		{
			name:         "wrong scheme",
			header:       "Basic abc",
			mockBehavior: func(*mocks.MockTokenParser, *mocks.MockUserFinder) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     "Not authorized, no token",
		},
		{
			name:   "bad token",
			header: "Bearer forged",
			mockBehavior: func(tokens *mocks.MockTokenParser, _ *mocks.MockUserFinder) {
				tokens.EXPECT().Parse("forged").Return(uuid.Nil, errors.New("signature is invalid")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Not authorized, token failed",
		},
		{
			name:   "user deleted",
			header: "bearer good",
			mockBehavior: func(tokens *mocks.MockTokenParser, users *mocks.MockUserFinder) {
				tokens.EXPECT().Parse("good").Return(userID, nil).Once()
				users.EXPECT().Profile(mock.Anything, userID).Return(entities.User{}, entities.ErrUserNotFound).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Not authorized, user not found",
		},
		{
			name:   "user lookup fails",
			header: "Bearer good",
			mockBehavior: func(tokens *mocks.MockTokenParser, users *mocks.MockUserFinder) {
				tokens.EXPECT().Parse("good").Return(userID, nil).Once()
				users.EXPECT().Profile(mock.Anything, userID).Return(entities.User{}, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "internal server error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := mocks.NewMockTokenParser(t)
			users := mocks.NewMockUserFinder(t)
			tc.mockBehavior(tokens, users)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := middleware.UserID(r.Context())
				assert.True(t, ok)
				w.Write([]byte(id.String()))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			middleware.Auth(discardLogger(), tokens, users)(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.UserID(req.Context())
	assert.False(t, ok)
}
