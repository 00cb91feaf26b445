// Package httputil holds the handler signature shared by routes, middlewares
// and the server, plus JSON helpers for reading and writing bodies.
package httputil

import (
	"context"
	"net/http"
)

// APIFunc is the signature of every API endpoint. vars carries the mux path
// variables; a returned error is turned into a JSON error response.
type APIFunc func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error

// APIVersionKey keys the negotiated API version in a request context.
type APIVersionKey struct{}

// VersionFromContext returns the negotiated API version, or "" outside of a
// versioned request.
func VersionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(APIVersionKey{}).(string)
	return v
}
