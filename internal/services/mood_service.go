package services

import (
	"context"
	"strings"
	"sync"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
	"github.com/growlog/growlog-api/internal/logger"
)

// MoodService enforces the one-mood-per-day invariant and the same-day
// cross-link to reflections.
type MoodService struct {
	moods       domain.MoodStore
	reflections domain.ReflectionStore
	analyzer    domain.SentimentAnalyzer
	cache       domain.StatsCache
}

// NewMoodService creates a new mood service
func NewMoodService(moods domain.MoodStore, reflections domain.ReflectionStore, analyzer domain.SentimentAnalyzer, cache domain.StatsCache) *MoodService {
	return &MoodService{
		moods:       moods,
		reflections: reflections,
		analyzer:    analyzer,
		cache:       cache,
	}
}

type CreateMoodInput struct {
	Emoji string `json:"emoji"`
	Note  string `json:"note"`
	Date  string `json:"date"`
}

type UpdateMoodInput struct {
	Emoji *string `json:"emoji"`
	Note  *string `json:"note"`
}

// Create records the mood for the given day. A second create for the same
// user and day returns a conflict and leaves the existing record unchanged.
// If a reflection already exists for that day, it is linked to the new mood.
func (s *MoodService) Create(ctx context.Context, userID uint, input CreateMoodInput) (*domain.Mood, error) {
	if strings.TrimSpace(input.Emoji) == "" {
		return nil, apperrors.NewValidationError("emoji is required")
	}

	bucket, err := resolveDay(input.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.moods.FirstInDay(ctx, userID, bucket.Start, bucket.End)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("a mood is already recorded for this date")
	}

	mood := &domain.Mood{
		UserID: userID,
		Date:   bucket.Start,
		Emoji:  input.Emoji,
		Note:   input.Note,
	}

	sentiment, advice := s.enrich(ctx, input.Note, input.Emoji)
	applySentiment(mood, sentiment)
	applyAdvice(mood, advice)

	// The existence check above is not atomic with the insert; under
	// concurrent creates the unique index reports the loser as a conflict.
	if err := s.moods.Create(ctx, mood); err != nil {
		return nil, err
	}

	reflection, err := s.reflections.FirstInDay(ctx, userID, bucket.Start, bucket.End)
	if err != nil {
		return nil, err
	}
	if reflection != nil {
		if err := s.reflections.SetMoodID(ctx, reflection.ID, mood.ID); err != nil {
			return nil, err
		}
	}

	s.cache.InvalidateUser(ctx, userID)
	return mood, nil
}

// ListByDate returns the moods of a day (at most one under the invariant),
// optionally filtered by emoji.
func (s *MoodService) ListByDate(ctx context.Context, userID uint, date, emoji string) ([]domain.Mood, error) {
	bucket, err := resolveDay(date)
	if err != nil {
		return nil, err
	}
	return s.moods.ListInDay(ctx, userID, bucket.Start, bucket.End, emoji)
}

// Update edits a mood's emoji and/or note. Sentiment and advice are
// recomputed only when the note actually changed.
func (s *MoodService) Update(ctx context.Context, userID, moodID uint, input UpdateMoodInput) (*domain.Mood, error) {
	mood, err := s.moods.FindByID(ctx, moodID)
	if err != nil {
		return nil, err
	}
	if mood == nil {
		return nil, apperrors.NewNotFoundError("mood not found")
	}
	if mood.UserID != userID {
		return nil, apperrors.NewPermissionError("you can only modify your own moods")
	}

	noteChanged := input.Note != nil && *input.Note != mood.Note
	if input.Emoji != nil {
		mood.Emoji = *input.Emoji
	}
	if input.Note != nil {
		mood.Note = *input.Note
	}

	if noteChanged {
		sentiment, advice := s.enrich(ctx, mood.Note, mood.Emoji)
		applySentiment(mood, sentiment)
		applyAdvice(mood, advice)
	}

	if err := s.moods.Update(ctx, mood); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return mood, nil
}

// enrich runs sentiment analysis and advice generation concurrently. Both are
// best-effort: a failure is logged and yields a nil result, never an error.
func (s *MoodService) enrich(ctx context.Context, note, emoji string) (*domain.SentimentResult, *domain.AdviceResult) {
	var (
		wg        sync.WaitGroup
		sentiment *domain.SentimentResult
		advice    *domain.AdviceResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		result, err := s.analyzer.Analyze(ctx, note)
		if err != nil {
			logger.Warn("Sentiment analysis failed", "error", err)
			return
		}
		sentiment = result
	}()
	go func() {
		defer wg.Done()
		result, err := s.analyzer.Advise(ctx, note, emoji)
		if err != nil {
			logger.Warn("Advice generation failed", "error", err)
			return
		}
		advice = result
	}()
	wg.Wait()

	return sentiment, advice
}

func applySentiment(mood *domain.Mood, result *domain.SentimentResult) {
	if result == nil {
		return
	}
	mood.Positive = &result.Positive
	mood.Neutral = &result.Neutral
	mood.Negative = &result.Negative
	mood.AILabel = &result.Label
	mood.AIModel = &result.Model
	if result.Version != "" {
		mood.AIVersion = &result.Version
	}
}

func applyAdvice(mood *domain.Mood, result *domain.AdviceResult) {
	if result == nil {
		return
	}
	mood.AIAdvice = &result.Advice
	mood.AIAdviceModel = &result.Model
	if result.Source != "" {
		mood.AIAdviceSource = &result.Source
	}
}
