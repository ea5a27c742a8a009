package repository

import (
	"context"
	"errors"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
	"gorm.io/gorm"
)

// ReflectionRepository handles reflection data operations
type ReflectionRepository struct {
	db *gorm.DB
}

// NewReflectionRepository creates a new reflection repository
func NewReflectionRepository(db *gorm.DB) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// Create inserts a new reflection, reporting a duplicate (user, date) insert
// as a conflict.
func (r *ReflectionRepository) Create(ctx context.Context, reflection *domain.Reflection) error {
	if err := r.db.WithContext(ctx).Create(reflection).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("a reflection is already recorded for this date")
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// FindByID returns the reflection with the given id, or (nil, nil) when absent.
func (r *ReflectionRepository) FindByID(ctx context.Context, id uint) (*domain.Reflection, error) {
	var reflection domain.Reflection
	if err := r.db.WithContext(ctx).First(&reflection, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &reflection, nil
}

// FirstInDay returns the single reflection in [start, end), or (nil, nil).
func (r *ReflectionRepository) FirstInDay(ctx context.Context, userID uint, start, end time.Time) (*domain.Reflection, error) {
	var reflection domain.Reflection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		First(&reflection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &reflection, nil
}

// ListInDay returns the reflections in [start, end).
func (r *ReflectionRepository) ListInDay(ctx context.Context, userID uint, start, end time.Time) ([]domain.Reflection, error) {
	var reflections []domain.Reflection
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("created_at DESC").
		Find(&reflections).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return reflections, nil
}

// ListByUser returns all reflections of the user, newest first.
func (r *ReflectionRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Reflection, error) {
	var reflections []domain.Reflection
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reflections).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return reflections, nil
}

// Update saves the full reflection record.
func (r *ReflectionRepository) Update(ctx context.Context, reflection *domain.Reflection) error {
	if err := r.db.WithContext(ctx).Save(reflection).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// SetMoodID links a reflection to its same-day mood.
func (r *ReflectionRepository) SetMoodID(ctx context.Context, reflectionID, moodID uint) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Reflection{}).
		Where("id = ?", reflectionID).
		Update("mood_id", moodID).Error
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// DeleteByUser removes all reflections owned by the user.
func (r *ReflectionRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Reflection{}).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
