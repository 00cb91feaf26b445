// Package router describes API routes independently of the HTTP mux that
// ends up serving them.
package router

import "github.com/sagarsuperuser/todos/internal/httputil"

// Router is a group of routes mounted together.
type Router interface {
	Routes() []Route
}

// Route is one method and path bound to an APIFunc. The server adds the
// versioned and bare variants of Path.
type Route interface {
	Handler() httputil.APIFunc
	Method() string
	Path() string
}
