package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/docker/go-units"
)

// WriteRawJSON writes the value v to the http response stream as json with standard json encoding.
func WriteRawJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// ReadJSON decodes exactly one JSON value from the request body into v.
// Trailing data after the value is rejected. The body is capped at limit
// bytes; a non-positive limit disables the cap.
func ReadJSON(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	var body io.Reader = r.Body
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}

	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return bodyError(err)
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return bodyError(err)
	default:
		return errors.New("malformed request body: unexpected data after JSON value")
	}
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("request body exceeds %s", units.BytesSize(float64(maxErr.Limit)))
	}
	return fmt.Errorf("malformed request body: %w", err)
}
