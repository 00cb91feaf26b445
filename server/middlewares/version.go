package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"runtime"

	"github.com/sagarsuperuser/todos/internal/httputil"
	"github.com/sagarsuperuser/todos/internal/versions"
)

// VersionMiddleware rejects requests for API versions outside
// [minAPIVersion, defaultAPIVersion] and stamps every response with the
// Server, Api-Version and Ostype headers.
type VersionMiddleware struct {
	serverHeader      string
	defaultAPIVersion string
	minAPIVersion     string
}

// NewVersionMiddleware fails when either API version is missing or the
// range is empty.
func NewVersionMiddleware(product, serverVersion, defaultAPIVersion, minAPIVersion string) (*VersionMiddleware, error) {
	if defaultAPIVersion == "" || minAPIVersion == "" {
		return nil, fmt.Errorf("default and minimum API versions must be set")
	}
	if versions.LessThan(defaultAPIVersion, minAPIVersion) {
		return nil, fmt.Errorf("default API version (%s) must be >= min API version (%s)", defaultAPIVersion, minAPIVersion)
	}
	if product == "" {
		product = "todos-api"
	}
	return &VersionMiddleware{
		serverHeader:      fmt.Sprintf("%s/%s (%s)", product, serverVersion, runtime.GOOS),
		defaultAPIVersion: defaultAPIVersion,
		minAPIVersion:     minAPIVersion,
	}, nil
}

type versionUnsupportedError struct {
	version, minVersion, maxVersion string
}

func (e versionUnsupportedError) Error() string {
	if e.minVersion != "" {
		return fmt.Sprintf("client version %s is too old. Minimum supported API version is %s, please upgrade your client", e.version, e.minVersion)
	}
	return fmt.Sprintf("client version %s is too new. Maximum supported API version is %s", e.version, e.maxVersion)
}

func (e versionUnsupportedError) InvalidParameter() {}

func (v VersionMiddleware) WrapHandler(next httputil.APIFunc) httputil.APIFunc {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request, vars map[string]string) error {
		w.Header().Set("Server", v.serverHeader)
		w.Header().Set("Api-Version", v.defaultAPIVersion)
		w.Header().Set("Ostype", runtime.GOOS)

		apiVersion := vars["version"]
		if apiVersion == "" {
			apiVersion = v.defaultAPIVersion
		}
		if versions.LessThan(apiVersion, v.minAPIVersion) {
			return versionUnsupportedError{version: apiVersion, minVersion: v.minAPIVersion}
		}
		if versions.GreaterThan(apiVersion, v.defaultAPIVersion) {
			return versionUnsupportedError{version: apiVersion, maxVersion: v.defaultAPIVersion}
		}
		ctx = context.WithValue(ctx, httputil.APIVersionKey{}, apiVersion)
		return next(ctx, w, r, vars)
	}
}
