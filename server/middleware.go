package server

import (
	"net/http"

	"github.com/sagarsuperuser/todos/internal/httputil"
)

// handlerWithGlobalMiddlewares wraps an APIFunc in the UseMiddleware chain,
// first registered outermost.
func (s *Server) handlerWithGlobalMiddlewares(handler httputil.APIFunc) httputil.APIFunc {
	next := handler

	for i := len(s.middlewares) - 1; i >= 0; i-- {
		next = s.middlewares[i].WrapHandler(next)
	}
	return next
}

// withRouterMiddlewares does the same for the mux.Use chain. mux only runs
// that chain on matched routes.
func (s *Server) withRouterMiddlewares(h http.Handler) http.Handler {
	for i := len(s.routerMiddlewares) - 1; i >= 0; i-- {
		h = s.routerMiddlewares[i].Middleware(h)
	}
	return h
}
