package services

import (
	"context"

	"github.com/growlog/growlog-api/internal/dateutil"
	"github.com/growlog/growlog-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DailyService composes the single-day view: mood, reflection, todos and
// todo completion stats.
type DailyService struct {
	moods       domain.MoodStore
	reflections domain.ReflectionStore
	todos       domain.TodoStore
}

// NewDailyService creates a new daily summary service
func NewDailyService(moods domain.MoodStore, reflections domain.ReflectionStore, todos domain.TodoStore) *DailyService {
	return &DailyService{
		moods:       moods,
		reflections: reflections,
		todos:       todos,
	}
}

// GetDailySummary returns the summary for the given day (today when date is
// empty). The three reads cover disjoint record sets and run concurrently.
// An empty day is a valid summary with nil mood and reflection, never an
// error.
func (s *DailyService) GetDailySummary(ctx context.Context, userID uint, date string) (*domain.DailySummary, error) {
	bucket, err := resolveDay(date)
	if err != nil {
		return nil, err
	}

	var (
		mood       *domain.Mood
		reflection *domain.Reflection
		todos      []domain.Todo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mood, err = s.moods.FirstInDay(gctx, userID, bucket.Start, bucket.End)
		return err
	})
	g.Go(func() error {
		var err error
		reflection, err = s.reflections.FirstInDay(gctx, userID, bucket.Start, bucket.End)
		return err
	})
	g.Go(func() error {
		var err error
		todos, err = s.todos.ListInDay(gctx, userID, bucket.Start, bucket.End, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if todos == nil {
		todos = []domain.Todo{}
	}

	return &domain.DailySummary{
		Date:        bucket.Start.Format(dateutil.Layout),
		Mood:        mood,
		Reflection:  reflection,
		Todos:       todos,
		TodoSummary: summarizeTodos(todos),
	}, nil
}
