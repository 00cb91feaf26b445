// Package errdefs classifies errors returned by API handlers.
//
// Each helper wraps the cause in a type carrying a marker method that
// github.com/containerd/errdefs recognises, so server/httpstatus can pick a
// status code without knowing the concrete error.
package errdefs

import (
	cerrdefs "github.com/containerd/errdefs"
)

type errInvalidParameter struct{ error }

func (errInvalidParameter) InvalidParameter() {}

func (e errInvalidParameter) Unwrap() error {
	return e.error
}

// InvalidParameter marks err as caused by bad client input.
func InvalidParameter(err error) error {
	if err == nil || cerrdefs.IsInvalidArgument(err) {
		return err
	}
	return errInvalidParameter{err}
}

type errUnavailable struct{ error }

func (errUnavailable) Unavailable() {}

func (e errUnavailable) Unwrap() error {
	return e.error
}

// Unavailable marks err as a temporarily unreachable dependency.
func Unavailable(err error) error {
	if err == nil || cerrdefs.IsUnavailable(err) {
		return err
	}
	return errUnavailable{err}
}

type errSystem struct{ error }

func (errSystem) System() {}

func (e errSystem) Unwrap() error {
	return e.error
}

// System marks err as an internal failure.
func System(err error) error {
	if err == nil || cerrdefs.IsInternal(err) {
		return err
	}
	return errSystem{err}
}
