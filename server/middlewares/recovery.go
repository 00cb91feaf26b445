package middlewares

import (
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog/hlog"

	"github.com/sagarsuperuser/todos/internal/httputil"
)

// Recovery is a mux middleware that recovers from panics, logs them and
// answers 500 with the standard JSON error body.
func Recovery() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					hlog.FromRequest(r).
						Error().
						Interface("panic", rec).
						Bytes("stack", debug.Stack()).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					_ = httputil.WriteRawJSON(w, http.StatusInternalServerError, map[string]string{
						"message": http.StatusText(http.StatusInternalServerError),
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
