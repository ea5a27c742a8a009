package repository

import (
	"context"
	"errors"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
	"gorm.io/gorm"
)

// MoodRepository handles mood data operations
type MoodRepository struct {
	db *gorm.DB
}

// NewMoodRepository creates a new mood repository
func NewMoodRepository(db *gorm.DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Create inserts a new mood. A duplicate (user, date) insert is reported as
// a conflict via the unique index, which is the race backstop for concurrent
// same-day creates.
func (r *MoodRepository) Create(ctx context.Context, mood *domain.Mood) error {
	if err := r.db.WithContext(ctx).Create(mood).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.NewConflictError("a mood is already recorded for this date")
		}
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// FindByID returns the mood with the given id, or (nil, nil) when absent.
func (r *MoodRepository) FindByID(ctx context.Context, id uint) (*domain.Mood, error) {
	var mood domain.Mood
	if err := r.db.WithContext(ctx).First(&mood, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &mood, nil
}

// FirstInDay returns the single mood in [start, end), or (nil, nil). Ordered
// by date ascending in case the uniqueness invariant was ever violated.
func (r *MoodRepository) FirstInDay(ctx context.Context, userID uint, start, end time.Time) (*domain.Mood, error) {
	var mood domain.Mood
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end).
		Order("date ASC").
		First(&mood).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return &mood, nil
}

// ListInDay returns the moods in [start, end), optionally filtered by emoji.
func (r *MoodRepository) ListInDay(ctx context.Context, userID uint, start, end time.Time, emoji string) ([]domain.Mood, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, start, end)
	if emoji != "" {
		query = query.Where("emoji = ?", emoji)
	}

	var moods []domain.Mood
	if err := query.Order("date ASC").Find(&moods).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return moods, nil
}

// ListInWindow returns the moods in the inclusive [start, end] window.
func (r *MoodRepository) ListInWindow(ctx context.Context, userID uint, start, end time.Time) ([]domain.Mood, error) {
	var moods []domain.Mood
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date ASC").
		Find(&moods).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return moods, nil
}

// Update saves the full mood record.
func (r *MoodRepository) Update(ctx context.Context, mood *domain.Mood) error {
	if err := r.db.WithContext(ctx).Save(mood).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// SetReflectionID links a mood to its same-day reflection.
func (r *MoodRepository) SetReflectionID(ctx context.Context, moodID, reflectionID uint) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Mood{}).
		Where("id = ?", moodID).
		Update("reflection_id", reflectionID).Error
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// DeleteByUser removes all moods owned by the user.
func (r *MoodRepository) DeleteByUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.Mood{}).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
