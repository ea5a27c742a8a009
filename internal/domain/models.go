package domain

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User owns all journal records. Email and nickname are unique.
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"-"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Nickname     string         `gorm:"uniqueIndex;not null" json:"nickname"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"default:USER" json:"role"`
}

// Mood is one emotion entry. Date always holds the day-bucket start (local
// midnight); at most one mood exists per (UserID, Date), enforced by a unique
// index. The AI fields are nil when sentiment analysis produced no result.
type Mood struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	Emoji     string    `gorm:"not null" json:"emoji"`
	Note      string    `json:"note,omitempty"`

	Positive  *float64 `json:"positive,omitempty"`
	Neutral   *float64 `json:"neutral,omitempty"`
	Negative  *float64 `json:"negative,omitempty"`
	AILabel   *string  `json:"ai_label,omitempty"`
	AIModel   *string  `json:"ai_model,omitempty"`
	AIVersion *string  `json:"ai_version,omitempty"`

	AIAdvice       *string `json:"ai_advice,omitempty"`
	AIAdviceModel  *string `json:"ai_advice_model,omitempty"`
	AIAdviceSource *string `json:"ai_advice_source,omitempty"`

	// Soft reference to the same-day reflection, set when the reflection
	// is created second. Never cleared automatically.
	ReflectionID *uint `json:"reflection_id,omitempty"`
}

// Reflection is one free-text entry per day. Same bucketing and uniqueness
// rules as Mood.
type Reflection struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Date      time.Time `gorm:"not null" json:"date"`
	Content   string    `gorm:"not null" json:"content"`

	// Soft reference to the same-day mood, set when the mood already
	// existed at creation time.
	MoodID *uint `json:"mood_id,omitempty"`
}

// Todo is a task item. CreatedAt may be back-dated to a bucket start when the
// caller supplies an explicit date.
type Todo struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"not null" json:"content"`
	IsDone    bool      `gorm:"default:false" json:"is_done"`
}

// TodoSummary aggregates completion over a set of todos.
// CompletionRate is a 0-100 integer, 0 when Total is 0.
type TodoSummary struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	CompletionRate int `json:"completion_rate"`
}

// DailySummary is the derived single-day view. Mood and Reflection are nil
// when absent for the day.
type DailySummary struct {
	Date        string      `json:"date"`
	Mood        *Mood       `json:"mood"`
	Reflection  *Reflection `json:"reflection"`
	Todos       []Todo      `json:"todos"`
	TodoSummary TodoSummary `json:"todo_summary"`
}

// SentimentAggregate is the positive/neutral/negative percentage triple.
// The three values sum to exactly 100, or are all zero when the window
// carried no probability mass.
type SentimentAggregate struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// StatsRange reports the window a statistics result covers.
type StatsRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// WeeklyStats is the derived trailing-window view.
type WeeklyStats struct {
	EmotionStats  map[string]int     `json:"emotion_stats"`
	TodoStats     TodoSummary        `json:"todo_stats"`
	AIAggregate   SentimentAggregate `json:"ai_aggregate"`
	AISampleCount int                `json:"ai_sample_count"`
	Period        string             `json:"period"`
	Range         StatsRange         `json:"range"`
}

// SentimentResult is the raw per-text output of the sentiment service.
// Probabilities are not required to sum to 1.
type SentimentResult struct {
	Positive float64
	Neutral  float64
	Negative float64
	Label    string
	Model    string
	Version  string
}

// AdviceResult is the optional advice output of the sentiment service.
type AdviceResult struct {
	Advice string
	Model  string
	Source string
}
