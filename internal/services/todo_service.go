package services

import (
	"context"
	"strings"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
)

// TodoService handles todo operations and per-day completion statistics.
type TodoService struct {
	todos domain.TodoStore
	cache domain.StatsCache
}

// NewTodoService creates a new todo service
func NewTodoService(todos domain.TodoStore, cache domain.StatsCache) *TodoService {
	return &TodoService{todos: todos, cache: cache}
}

type CreateTodoInput struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

type UpdateTodoInput struct {
	Content *string `json:"content"`
	IsDone  *bool   `json:"is_done"`
}

// Create adds a todo. An explicit date back-dates the todo to that day's
// bucket start so it lands in the right daily summary.
func (s *TodoService) Create(ctx context.Context, userID uint, input CreateTodoInput) (*domain.Todo, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("content is required")
	}

	createdAt := time.Now()
	if input.Date != "" {
		bucket, err := resolveDay(input.Date)
		if err != nil {
			return nil, err
		}
		createdAt = bucket.Start
	}

	todo := &domain.Todo{
		UserID:    userID,
		Content:   input.Content,
		IsDone:    false,
		CreatedAt: createdAt,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return todo, nil
}

// List returns the todos created on a day (today when date is empty),
// optionally filtered by completion state.
func (s *TodoService) List(ctx context.Context, userID uint, date string, done *bool) ([]domain.Todo, error) {
	bucket, err := resolveDay(date)
	if err != nil {
		return nil, err
	}
	return s.todos.ListInDay(ctx, userID, bucket.Start, bucket.End, done)
}

// Update edits a todo's content and/or done flag.
func (s *TodoService) Update(ctx context.Context, userID, todoID uint, input UpdateTodoInput) (*domain.Todo, error) {
	todo, err := s.ownedTodo(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, apperrors.NewValidationError("content must not be empty")
		}
		todo.Content = *input.Content
	}
	if input.IsDone != nil {
		todo.IsDone = *input.IsDone
	}

	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return todo, nil
}

// Toggle flips a todo's done flag.
func (s *TodoService) Toggle(ctx context.Context, userID, todoID uint) (*domain.Todo, error) {
	todo, err := s.ownedTodo(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}

	todo.IsDone = !todo.IsDone
	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return todo, nil
}

// Delete removes a todo.
func (s *TodoService) Delete(ctx context.Context, userID, todoID uint) error {
	if _, err := s.ownedTodo(ctx, userID, todoID); err != nil {
		return err
	}
	if err := s.todos.Delete(ctx, todoID); err != nil {
		return err
	}

	s.cache.InvalidateUser(ctx, userID)
	return nil
}

// Statistics returns completion stats for the todos created on a day.
func (s *TodoService) Statistics(ctx context.Context, userID uint, date string) (domain.TodoSummary, error) {
	bucket, err := resolveDay(date)
	if err != nil {
		return domain.TodoSummary{}, err
	}

	todos, err := s.todos.ListInDay(ctx, userID, bucket.Start, bucket.End, nil)
	if err != nil {
		return domain.TodoSummary{}, err
	}
	return summarizeTodos(todos), nil
}

// ownedTodo loads a todo, checking existence before ownership.
func (s *TodoService) ownedTodo(ctx context.Context, userID, todoID uint) (*domain.Todo, error) {
	todo, err := s.todos.FindByID(ctx, todoID)
	if err != nil {
		return nil, err
	}
	if todo == nil {
		return nil, apperrors.NewNotFoundError("todo not found")
	}
	if todo.UserID != userID {
		return nil, apperrors.NewPermissionError("you can only modify your own todos")
	}
	return todo, nil
}
