// Package middlewares holds the server's global request middlewares.
//
// Two kinds live here: mux middlewares (func(http.Handler) http.Handler) that
// run for every matched route, and Middleware values that wrap APIFuncs so
// they can fail through the server's error mapping.
package middlewares

import (
	"github.com/sagarsuperuser/todos/internal/httputil"
)

// Middleware wraps an APIFunc. Registered with Server.UseMiddleware.
type Middleware interface {
	WrapHandler(httputil.APIFunc) httputil.APIFunc
}
