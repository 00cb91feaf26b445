package store

import (
	"context"
	"database/sql"
)

// Driver is an interface for store driver.
// It contains all methods that store database driver should implement.
type Driver interface {
	// GetDB returns the underlying connection pool, nil for drivers without one.
	GetDB() *sql.DB
	Ping(ctx context.Context) error
	Close() error

	// todos model related methods.
	CreateTodo(ctx context.Context, create *CreateTodo) (*Todo, error)
	ListTodos(ctx context.Context) ([]*Todo, error)
}
