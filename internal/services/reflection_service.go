package services

import (
	"context"
	"strings"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
)

// ReflectionService enforces the one-reflection-per-day invariant and the
// same-day cross-link to moods.
type ReflectionService struct {
	reflections domain.ReflectionStore
	moods       domain.MoodStore
	cache       domain.StatsCache
}

// NewReflectionService creates a new reflection service
func NewReflectionService(reflections domain.ReflectionStore, moods domain.MoodStore, cache domain.StatsCache) *ReflectionService {
	return &ReflectionService{
		reflections: reflections,
		moods:       moods,
		cache:       cache,
	}
}

type CreateReflectionInput struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

// Create records the reflection for the given day, rejecting a second
// reflection for the same user and day with a conflict. If a mood already
// exists for that day, it is linked to the new reflection.
func (s *ReflectionService) Create(ctx context.Context, userID uint, input CreateReflectionInput) (*domain.Reflection, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("content is required")
	}

	bucket, err := resolveDay(input.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.reflections.FirstInDay(ctx, userID, bucket.Start, bucket.End)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("a reflection is already recorded for this date")
	}

	reflection := &domain.Reflection{
		UserID:  userID,
		Date:    bucket.Start,
		Content: input.Content,
	}
	if err := s.reflections.Create(ctx, reflection); err != nil {
		return nil, err
	}

	mood, err := s.moods.FirstInDay(ctx, userID, bucket.Start, bucket.End)
	if err != nil {
		return nil, err
	}
	if mood != nil {
		if err := s.moods.SetReflectionID(ctx, mood.ID, reflection.ID); err != nil {
			return nil, err
		}
	}

	s.cache.InvalidateUser(ctx, userID)
	return reflection, nil
}

// List returns the user's reflections, scoped to a day when date is given.
func (s *ReflectionService) List(ctx context.Context, userID uint, date string) ([]domain.Reflection, error) {
	if date == "" {
		return s.reflections.ListByUser(ctx, userID)
	}

	bucket, err := resolveDay(date)
	if err != nil {
		return nil, err
	}
	return s.reflections.ListInDay(ctx, userID, bucket.Start, bucket.End)
}

// GetByID returns a single reflection. Existence is checked before ownership
// so a missing record never leaks as a permission error.
func (s *ReflectionService) GetByID(ctx context.Context, userID, reflectionID uint) (*domain.Reflection, error) {
	reflection, err := s.reflections.FindByID(ctx, reflectionID)
	if err != nil {
		return nil, err
	}
	if reflection == nil {
		return nil, apperrors.NewNotFoundError("reflection not found")
	}
	if reflection.UserID != userID {
		return nil, apperrors.NewPermissionError("you can only view your own reflections")
	}
	return reflection, nil
}

// Update edits a reflection's content. The day bucket and any link are left
// untouched.
func (s *ReflectionService) Update(ctx context.Context, userID, reflectionID uint, content string) (*domain.Reflection, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewValidationError("content is required")
	}

	reflection, err := s.reflections.FindByID(ctx, reflectionID)
	if err != nil {
		return nil, err
	}
	if reflection == nil {
		return nil, apperrors.NewNotFoundError("reflection not found")
	}
	if reflection.UserID != userID {
		return nil, apperrors.NewPermissionError("you can only modify your own reflections")
	}

	reflection.Content = content
	if err := s.reflections.Update(ctx, reflection); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return reflection, nil
}
