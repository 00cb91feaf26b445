package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"github.com/sagarsuperuser/todos/errdefs"
	"github.com/sagarsuperuser/todos/internal/httputil"
	"github.com/sagarsuperuser/todos/store"
)

type CreateTodoReq struct {
	Title string `json:"title"`
}

type TodoResp struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newTodoResp(t *store.Todo) *TodoResp {
	if t == nil {
		return nil
	}
	return &TodoResp{
		ID:        t.ID,
		Title:     t.Title,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type todosController struct {
	store       *store.Store
	maxBodySize int64
}

// NewTodosController returns a TodosController persisting to st.
// Request bodies larger than maxBodySize bytes are rejected.
func NewTodosController(st *store.Store, maxBodySize int64) TodosController {
	return &todosController{
		store:       st,
		maxBodySize: maxBodySize,
	}
}

func (c *todosController) Create(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	in := CreateTodoReq{}
	if err := httputil.ReadJSON(rw, req, c.maxBodySize, &in); err != nil {
		return errdefs.InvalidParameter(err)
	}

	todo, err := c.store.CreateTodo(ctx, &store.CreateTodo{Title: in.Title})
	if errors.Is(err, store.ErrEmptyTitle) || errors.Is(err, store.ErrTitleTooLong) {
		return errdefs.InvalidParameter(err)
	}
	if err != nil {
		return errdefs.System(fmt.Errorf("failed to create todo: %w", err))
	}

	hlog.FromRequest(req).Info().Int64("todo_id", todo.ID).Msg("todo created")
	return httputil.WriteRawJSON(rw, http.StatusCreated, newTodoResp(todo))
}

func (c *todosController) List(ctx context.Context, rw http.ResponseWriter, req *http.Request, vars map[string]string) error {
	list, err := c.store.ListTodos(ctx)
	if err != nil {
		return errdefs.System(fmt.Errorf("failed to list todos: %w", err))
	}

	resp := make([]*TodoResp, 0, len(list))
	for _, todo := range list {
		resp = append(resp, newTodoResp(todo))
	}
	return httputil.WriteRawJSON(rw, http.StatusOK, resp)
}
