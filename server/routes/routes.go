// Package routes binds the public API paths to their handlers.
package routes

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sagarsuperuser/todos/internal/router"
	"github.com/sagarsuperuser/todos/server/controllers"
)

const (
	WelcomePath = "/api"
	TodosPath   = "/api/todos"

	WelcomeMessage = "Welcome to the Todos API!"
)

type WelcomeResp struct {
	Message string `json:"message"`
}

// welcomeBody is sent as is, without a trailing newline.
var welcomeBody, _ = json.Marshal(WelcomeResp{Message: WelcomeMessage})

// RegisterRoutes adds the API routes to app. Controller handlers are bound
// as they are; their errors reach the server unchanged.
func RegisterRoutes(app router.Registrar, c *controllers.Controllers) {
	app.Get(WelcomePath, welcome)

	app.Post(TodosPath, c.Todos.Create)
	app.Get(TodosPath, c.Todos.List)
}

func welcome(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(http.StatusOK)
	_, err := rw.Write(welcomeBody)
	return err
}
