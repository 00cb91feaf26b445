// Package memory is an in-process store driver for local runs and tests.
package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/sagarsuperuser/todos/internal/common"
	"github.com/sagarsuperuser/todos/store"
)

type DB struct {
	mu     sync.RWMutex
	todos  []store.Todo
	nextID int64
	now    common.NowFunc
}

func NewDB(now common.NowFunc) store.Driver {
	return &DB{
		nextID: 1,
		now:    now,
	}
}

// GetDB returns nil; the memory driver has no connection pool.
func (d *DB) GetDB() *sql.DB {
	return nil
}

func (d *DB) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (d *DB) Close() error {
	return nil
}

func (d *DB) CreateTodo(ctx context.Context, create *store.CreateTodo) (*store.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	todo := store.Todo{
		ID:        d.nextID,
		Title:     create.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.nextID++
	d.todos = append(d.todos, todo)

	return &todo, nil
}

func (d *DB) ListTodos(ctx context.Context) ([]*store.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	// todos is append-only with increasing ids, so it is already in id order.
	list := make([]*store.Todo, 0, len(d.todos))
	for i := range d.todos {
		todo := d.todos[i]
		list = append(list, &todo)
	}
	return list, nil
}
