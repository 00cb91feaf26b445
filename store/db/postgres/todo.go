package postgres

import (
	"context"

	"github.com/sagarsuperuser/todos/store"
)

func (d *DB) CreateTodo(ctx context.Context, create *store.CreateTodo) (*store.Todo, error) {
	now := d.now()

	todo := store.Todo{
		Title:     create.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO todos (title, created_at, updated_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, create.Title, now, now).Scan(&todo.ID)
	if err != nil {
		return nil, err
	}

	return &todo, nil
}

func (d *DB) ListTodos(ctx context.Context) ([]*store.Todo, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, title, created_at, updated_at
		FROM todos
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*store.Todo, 0)
	for rows.Next() {
		var todo store.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.CreatedAt, &todo.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
