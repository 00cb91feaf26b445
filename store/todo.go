package store

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxTitleLength is the longest title a todo can carry, in characters.
const MaxTitleLength = 255

var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrTitleTooLong = errors.New("title must be at most 255 characters")
)

type Todo struct {
	ID        int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateTodo struct {
	Title string
}

// Validate trims the title in place and checks its length.
func (c *CreateTodo) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(c.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func (s *Store) CreateTodo(ctx context.Context, create *CreateTodo) (*Todo, error) {
	if err := create.Validate(); err != nil {
		return nil, err
	}
	return s.driver.CreateTodo(ctx, create)
}

// ListTodos returns every todo ordered by id ascending.
func (s *Store) ListTodos(ctx context.Context) ([]*Todo, error) {
	return s.driver.ListTodos(ctx)
}
