package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/SergeyBogomolovv/shipment-tracker/pkg/utils"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const genericPanicMessage = "Something went wrong!"

// Recoverer turns a panic into a 500 JSON response. The panic value is only
// exposed when verbose is set.
func Recoverer(logger *slog.Logger, verbose bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("panic", rec),
					slog.String("request_id", chimw.GetReqID(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)

				message := genericPanicMessage
				if verbose {
					message = fmt.Sprint(rec)
				}
				utils.WriteError(w, message, http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
