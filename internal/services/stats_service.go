package services

import (
	"context"
	"math"

	"github.com/growlog/growlog-api/internal/dateutil"
	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
)

const periodWeekly = "weekly"

// StatsService computes distributional and AI-sentiment statistics over the
// trailing 7-day window of one user.
type StatsService struct {
	moods domain.MoodStore
	todos domain.TodoStore
	cache domain.StatsCache
}

// NewStatsService creates a new stats service
func NewStatsService(moods domain.MoodStore, todos domain.TodoStore, cache domain.StatsCache) *StatsService {
	return &StatsService{moods: moods, todos: todos, cache: cache}
}

// GetSummary returns the weekly statistics for the window ending on the
// reference day (today when date is empty). Only the weekly period is
// supported.
func (s *StatsService) GetSummary(ctx context.Context, userID uint, date, period string) (*domain.WeeklyStats, error) {
	if period != "" && period != periodWeekly {
		return nil, apperrors.NewValidationError("only weekly statistics are supported")
	}

	window, err := resolveWeek(date)
	if err != nil {
		return nil, err
	}
	day := window.End.Format(dateutil.Layout)

	if cached, ok := s.cache.GetWeekly(ctx, userID, day); ok {
		return cached, nil
	}

	moods, err := s.moods.ListInWindow(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	todos, err := s.todos.ListInWindow(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	aggregate, sampleCount := aggregateSentiment(moods)

	stats := &domain.WeeklyStats{
		EmotionStats:  tallyEmojis(moods),
		TodoStats:     summarizeTodos(todos),
		AIAggregate:   aggregate,
		AISampleCount: sampleCount,
		Period:        periodWeekly,
		Range: domain.StatsRange{
			Start: window.Start,
			End:   window.End,
		},
	}

	s.cache.SetWeekly(ctx, userID, day, stats)
	return stats, nil
}

// tallyEmojis counts moods per distinct emoji. Entries with an empty emoji
// are excluded.
func tallyEmojis(moods []domain.Mood) map[string]int {
	counts := make(map[string]int)
	for _, m := range moods {
		if m.Emoji == "" {
			continue
		}
		counts[m.Emoji]++
	}
	return counts
}

// aggregateSentiment turns per-entry AI probabilities into an integer
// percentage triple that always sums to exactly 100. Positive and neutral are
// rounded independently; negative absorbs the rounding slack and is clamped
// at zero. A window with no probability mass yields all zeros, with the
// sample count still reported.
func aggregateSentiment(moods []domain.Mood) (domain.SentimentAggregate, int) {
	var posSum, neuSum, negSum float64
	sampleCount := 0

	for _, m := range moods {
		if m.AILabel == nil && m.Positive == nil && m.Neutral == nil && m.Negative == nil {
			continue
		}
		sampleCount++
		posSum += deref(m.Positive)
		neuSum += deref(m.Neutral)
		negSum += deref(m.Negative)
	}

	totalProb := posSum + neuSum + negSum
	if totalProb == 0 {
		return domain.SentimentAggregate{}, sampleCount
	}

	positive := int(math.Round(posSum / totalProb * 100))
	neutral := int(math.Round(neuSum / totalProb * 100))
	negative := 100 - positive - neutral
	if negative < 0 {
		negative = 0
	}

	return domain.SentimentAggregate{
		Positive: positive,
		Neutral:  neutral,
		Negative: negative,
	}, sampleCount
}

// summarizeTodos computes completion stats for a set of todos.
func summarizeTodos(todos []domain.Todo) domain.TodoSummary {
	completed := 0
	for _, t := range todos {
		if t.IsDone {
			completed++
		}
	}
	return domain.TodoSummary{
		Total:          len(todos),
		Completed:      completed,
		CompletionRate: completionRate(len(todos), completed),
	}
}

// completionRate is round(100*completed/total), 0 when total is 0.
func completionRate(total, completed int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
