package router

import "github.com/sagarsuperuser/todos/internal/httputil"

// Registrar is the capability handed to route registration functions.
type Registrar interface {
	Get(path string, handler httputil.APIFunc, opts ...RouteWrapper)
	Post(path string, handler httputil.APIFunc, opts ...RouteWrapper)
}

// Table collects routes registered through a Registrar so the server can
// mount them as a Router.
type Table struct {
	routes []Route
}

var (
	_ Registrar = (*Table)(nil)
	_ Router    = (*Table)(nil)
)

func NewTable() *Table {
	return &Table{}
}

func (t *Table) Get(path string, handler httputil.APIFunc, opts ...RouteWrapper) {
	t.routes = append(t.routes, NewGetRoute(path, handler, opts...))
}

func (t *Table) Post(path string, handler httputil.APIFunc, opts ...RouteWrapper) {
	t.routes = append(t.routes, NewPostRoute(path, handler, opts...))
}

// Routes returns the registered routes in registration order.
func (t *Table) Routes() []Route {
	return t.routes
}
