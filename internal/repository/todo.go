package repository

import (
	"context"
	"errors"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
	"gorm.io/gorm"
)

// TodoRepository handles todo data operations
type TodoRepository struct {
	db *gorm.DB
}

// NewTodoRepository creates a new todo repository
func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create inserts a new todo. CreatedAt is respected when pre-set by the
// caller, which is how back-dated todos land in an earlier day bucket.
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// FindByID returns the todo with the given id, or (nil, nil) when absent.
func (r *TodoRepository) FindByID(ctx context.Context, id uint) (*domain.Todo, error) {
	var todo domain.Todo
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &todo, nil
}

// ListInDay returns the todos created in [start, end), optionally filtered
// by completion state, newest first.
func (r *TodoRepository) ListInDay(ctx context.Context, userID uint, start, end time.Time, done *bool) ([]domain.Todo, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end)
	if done != nil {
		query = query.Where("is_done = ?", *done)
	}

	var todos []domain.Todo
	if err := query.Order("created_at DESC").Find(&todos).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return todos, nil
}

// ListInWindow returns the todos created in the inclusive [start, end] window.
func (r *TodoRepository) ListInWindow(ctx context.Context, userID uint, start, end time.Time) ([]domain.Todo, error) {
	var todos []domain.Todo
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, start, end).
		Order("created_at ASC").
		Find(&todos).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return todos, nil
}

// Update saves the full todo record.
func (r *TodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	if err := r.db.WithContext(ctx).Save(todo).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// Delete removes a todo by id.
func (r *TodoRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Todo{}, id).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// DeleteByUser removes all todos owned by the user.
func (r *TodoRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Todo{}).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
