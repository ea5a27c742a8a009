package services

import (
	"context"
	"fmt"
	"time"

	"github.com/growlog/growlog-api/internal/domain"
	apperrors "github.com/growlog/growlog-api/internal/errors"
)

// In-memory store fakes shared across the service tests. They mirror the
// repository range conventions: day queries are half-open, window queries
// are inclusive.

type fakeMoodStore struct {
	moods  map[uint]*domain.Mood
	nextID uint
}

func newFakeMoodStore() *fakeMoodStore {
	return &fakeMoodStore{moods: make(map[uint]*domain.Mood)}
}

func (s *fakeMoodStore) Create(_ context.Context, mood *domain.Mood) error {
	for _, m := range s.moods {
		if m.UserID == mood.UserID && m.Date.Equal(mood.Date) {
			return apperrors.NewConflictError("duplicate mood")
		}
	}
	s.nextID++
	mood.ID = s.nextID
	copied := *mood
	s.moods[mood.ID] = &copied
	return nil
}

func (s *fakeMoodStore) FindByID(_ context.Context, id uint) (*domain.Mood, error) {
	m, ok := s.moods[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (s *fakeMoodStore) FirstInDay(_ context.Context, userID uint, start, end time.Time) (*domain.Mood, error) {
	for _, m := range s.moods {
		if m.UserID == userID && !m.Date.Before(start) && m.Date.Before(end) {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeMoodStore) ListInDay(_ context.Context, userID uint, start, end time.Time, emoji string) ([]domain.Mood, error) {
	var out []domain.Mood
	for _, m := range s.moods {
		if m.UserID != userID || m.Date.Before(start) || !m.Date.Before(end) {
			continue
		}
		if emoji != "" && m.Emoji != emoji {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (s *fakeMoodStore) ListInWindow(_ context.Context, userID uint, start, end time.Time) ([]domain.Mood, error) {
	var out []domain.Mood
	for _, m := range s.moods {
		if m.UserID == userID && !m.Date.Before(start) && !m.Date.After(end) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *fakeMoodStore) Update(_ context.Context, mood *domain.Mood) error {
	if _, ok := s.moods[mood.ID]; !ok {
		return apperrors.NewNotFoundError("mood not found")
	}
	copied := *mood
	s.moods[mood.ID] = &copied
	return nil
}

func (s *fakeMoodStore) SetReflectionID(_ context.Context, moodID, reflectionID uint) error {
	m, ok := s.moods[moodID]
	if !ok {
		return apperrors.NewNotFoundError("mood not found")
	}
	m.ReflectionID = &reflectionID
	return nil
}

func (s *fakeMoodStore) DeleteByUser(_ context.Context, userID uint) error {
	for id, m := range s.moods {
		if m.UserID == userID {
			delete(s.moods, id)
		}
	}
	return nil
}

type fakeReflectionStore struct {
	reflections map[uint]*domain.Reflection
	nextID      uint
}

func newFakeReflectionStore() *fakeReflectionStore {
	return &fakeReflectionStore{reflections: make(map[uint]*domain.Reflection)}
}

func (s *fakeReflectionStore) Create(_ context.Context, reflection *domain.Reflection) error {
	for _, r := range s.reflections {
		if r.UserID == reflection.UserID && r.Date.Equal(reflection.Date) {
			return apperrors.NewConflictError("duplicate reflection")
		}
	}
	s.nextID++
	reflection.ID = s.nextID
	copied := *reflection
	s.reflections[reflection.ID] = &copied
	return nil
}

func (s *fakeReflectionStore) FindByID(_ context.Context, id uint) (*domain.Reflection, error) {
	r, ok := s.reflections[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (s *fakeReflectionStore) FirstInDay(_ context.Context, userID uint, start, end time.Time) (*domain.Reflection, error) {
	for _, r := range s.reflections {
		if r.UserID == userID && !r.Date.Before(start) && r.Date.Before(end) {
			copied := *r
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeReflectionStore) ListInDay(_ context.Context, userID uint, start, end time.Time) ([]domain.Reflection, error) {
	var out []domain.Reflection
	for _, r := range s.reflections {
		if r.UserID == userID && !r.Date.Before(start) && r.Date.Before(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeReflectionStore) ListByUser(_ context.Context, userID uint) ([]domain.Reflection, error) {
	var out []domain.Reflection
	for _, r := range s.reflections {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (s *fakeReflectionStore) Update(_ context.Context, reflection *domain.Reflection) error {
	if _, ok := s.reflections[reflection.ID]; !ok {
		return apperrors.NewNotFoundError("reflection not found")
	}
	copied := *reflection
	s.reflections[reflection.ID] = &copied
	return nil
}

func (s *fakeReflectionStore) SetMoodID(_ context.Context, reflectionID, moodID uint) error {
	r, ok := s.reflections[reflectionID]
	if !ok {
		return apperrors.NewNotFoundError("reflection not found")
	}
	r.MoodID = &moodID
	return nil
}

func (s *fakeReflectionStore) DeleteByUser(_ context.Context, userID uint) error {
	for id, r := range s.reflections {
		if r.UserID == userID {
			delete(s.reflections, id)
		}
	}
	return nil
}

type fakeTodoStore struct {
	todos  map[uint]*domain.Todo
	nextID uint
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: make(map[uint]*domain.Todo)}
}

func (s *fakeTodoStore) Create(_ context.Context, todo *domain.Todo) error {
	s.nextID++
	todo.ID = s.nextID
	copied := *todo
	s.todos[todo.ID] = &copied
	return nil
}

func (s *fakeTodoStore) FindByID(_ context.Context, id uint) (*domain.Todo, error) {
	t, ok := s.todos[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (s *fakeTodoStore) ListInDay(_ context.Context, userID uint, start, end time.Time, done *bool) ([]domain.Todo, error) {
	var out []domain.Todo
	for _, t := range s.todos {
		if t.UserID != userID || t.CreatedAt.Before(start) || !t.CreatedAt.Before(end) {
			continue
		}
		if done != nil && t.IsDone != *done {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (s *fakeTodoStore) ListInWindow(_ context.Context, userID uint, start, end time.Time) ([]domain.Todo, error) {
	var out []domain.Todo
	for _, t := range s.todos {
		if t.UserID == userID && !t.CreatedAt.Before(start) && !t.CreatedAt.After(end) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *fakeTodoStore) Update(_ context.Context, todo *domain.Todo) error {
	if _, ok := s.todos[todo.ID]; !ok {
		return apperrors.NewNotFoundError("todo not found")
	}
	copied := *todo
	s.todos[todo.ID] = &copied
	return nil
}

func (s *fakeTodoStore) Delete(_ context.Context, id uint) error {
	delete(s.todos, id)
	return nil
}

func (s *fakeTodoStore) DeleteByUser(_ context.Context, userID uint) error {
	for id, t := range s.todos {
		if t.UserID == userID {
			delete(s.todos, id)
		}
	}
	return nil
}

type fakeUserStore struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	for _, u := range s.users {
		if u.Email == user.Email || u.Nickname == user.Nickname {
			return apperrors.NewConflictError("duplicate user")
		}
	}
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) FindByNickname(_ context.Context, nickname string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Nickname == nickname {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) UpdateNickname(_ context.Context, id uint, nickname string) error {
	u, ok := s.users[id]
	if !ok {
		return apperrors.NewNotFoundError("user not found")
	}
	u.Nickname = nickname
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	u, ok := s.users[id]
	if !ok {
		return apperrors.NewNotFoundError("user not found")
	}
	u.PasswordHash = passwordHash
	return nil
}

func (s *fakeUserStore) Delete(_ context.Context, id uint) error {
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) ListAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range s.users {
		out = append(out, *u)
	}
	return out, nil
}

type fakeStatsCache struct {
	entries       map[string]*domain.WeeklyStats
	invalidations int
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: make(map[string]*domain.WeeklyStats)}
}

func (c *fakeStatsCache) key(userID uint, day string) string {
	return fmt.Sprintf("%d:%s", userID, day)
}

func (c *fakeStatsCache) GetWeekly(_ context.Context, userID uint, day string) (*domain.WeeklyStats, bool) {
	stats, ok := c.entries[c.key(userID, day)]
	return stats, ok
}

func (c *fakeStatsCache) SetWeekly(_ context.Context, userID uint, day string, stats *domain.WeeklyStats) {
	c.entries[c.key(userID, day)] = stats
}

func (c *fakeStatsCache) InvalidateUser(_ context.Context, userID uint) {
	c.invalidations++
	prefix := fmt.Sprintf("%d:", userID)
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
}

type fakeAnalyzer struct {
	sentiment  *domain.SentimentResult
	advice     *domain.AdviceResult
	analyzeErr error
	adviseErr  error
	calls      int
}

func (a *fakeAnalyzer) Analyze(_ context.Context, text string) (*domain.SentimentResult, error) {
	a.calls++
	if a.analyzeErr != nil {
		return nil, a.analyzeErr
	}
	if text == "" {
		return nil, nil
	}
	return a.sentiment, nil
}

func (a *fakeAnalyzer) Advise(_ context.Context, text, emoji string) (*domain.AdviceResult, error) {
	if a.adviseErr != nil {
		return nil, a.adviseErr
	}
	if text == "" {
		return nil, nil
	}
	return a.advice, nil
}
