package httpstatus

import (
	"context"
	"fmt"
	"net/http"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/rs/zerolog"
)

// classes lists the error classes handlers produce, outermost match wins.
var classes = []struct {
	is     func(error) bool
	status int
}{
	{cerrdefs.IsInvalidArgument, http.StatusBadRequest},
	{cerrdefs.IsUnavailable, http.StatusServiceUnavailable},
	{cerrdefs.IsInternal, http.StatusInternalServerError},
}

// FromError maps a handler error to the HTTP status sent to the client.
// Anything unclassified is a 500.
func FromError(err error) int {
	if err == nil {
		return http.StatusInternalServerError
	}

	rerr := cerrdefs.Resolve(err)
	for _, c := range classes {
		if c.is(rerr) {
			return c.status
		}
	}

	if !cerrdefs.IsUnknown(err) {
		zerolog.Ctx(context.TODO()).Debug().
			Err(err).
			Str("error_type", fmt.Sprintf("%T", err)).
			Msg("unclassified handler error, answering 500")
	}
	return http.StatusInternalServerError
}
