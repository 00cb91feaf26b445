// Package controllers holds the handlers the route table delegates to.
package controllers

import (
	"context"
	"net/http"

	"github.com/sagarsuperuser/todos/server/settings"
	"github.com/sagarsuperuser/todos/store"
)

// TodosController handles the todos collection.
type TodosController interface {
	Create(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error
	List(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error
}

// Controllers is the set of controllers the routes are bound to.
type Controllers struct {
	Todos TodosController
}

// New builds the store backed controllers.
func New(s *settings.Settings, st *store.Store) *Controllers {
	return &Controllers{
		Todos: NewTodosController(st, int64(s.MaxBodySize)),
	}
}
