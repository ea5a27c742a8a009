package domain

import (
	"context"
	"time"
)

// UserStore handles user persistence. Lookups return (nil, nil) when no
// record exists; callers decide whether absence is an error.
type UserStore interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByNickname(ctx context.Context, nickname string) (*User, error)
	UpdateNickname(ctx context.Context, id uint, nickname string) error
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]User, error)
}

// MoodStore handles mood persistence. Create must reject a duplicate
// (user, day-bucket) insert; day queries are half-open [start, end), window
// queries are inclusive [start, end].
type MoodStore interface {
	Create(ctx context.Context, mood *Mood) error
	FindByID(ctx context.Context, id uint) (*Mood, error)
	FirstInDay(ctx context.Context, userID uint, start, end time.Time) (*Mood, error)
	ListInDay(ctx context.Context, userID uint, start, end time.Time, emoji string) ([]Mood, error)
	ListInWindow(ctx context.Context, userID uint, start, end time.Time) ([]Mood, error)
	Update(ctx context.Context, mood *Mood) error
	SetReflectionID(ctx context.Context, moodID, reflectionID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

// ReflectionStore handles reflection persistence, with the same uniqueness
// and range conventions as MoodStore.
type ReflectionStore interface {
	Create(ctx context.Context, reflection *Reflection) error
	FindByID(ctx context.Context, id uint) (*Reflection, error)
	FirstInDay(ctx context.Context, userID uint, start, end time.Time) (*Reflection, error)
	ListInDay(ctx context.Context, userID uint, start, end time.Time) ([]Reflection, error)
	ListByUser(ctx context.Context, userID uint) ([]Reflection, error)
	Update(ctx context.Context, reflection *Reflection) error
	SetMoodID(ctx context.Context, reflectionID, moodID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

// TodoStore handles todo persistence, ranged over CreatedAt.
type TodoStore interface {
	Create(ctx context.Context, todo *Todo) error
	FindByID(ctx context.Context, id uint) (*Todo, error)
	ListInDay(ctx context.Context, userID uint, start, end time.Time, done *bool) ([]Todo, error)
	ListInWindow(ctx context.Context, userID uint, start, end time.Time) ([]Todo, error)
	Update(ctx context.Context, todo *Todo) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

// SentimentAnalyzer is the external AI collaborator. Errors from either call
// are absorbed by callers into "no result", never surfaced to the user.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) (*SentimentResult, error)
	Advise(ctx context.Context, text, emoji string) (*AdviceResult, error)
}

// StatsCache caches computed weekly statistics per user and reference day.
// Implementations are best-effort: a miss or a failed write is never an error.
type StatsCache interface {
	GetWeekly(ctx context.Context, userID uint, day string) (*WeeklyStats, bool)
	SetWeekly(ctx context.Context, userID uint, day string, stats *WeeklyStats)
	InvalidateUser(ctx context.Context, userID uint)
}
