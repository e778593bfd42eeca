package models

import (
	"errors"
	"time"
)

// ErrNotFound is returned by stores when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

type QuestionSource string

const (
	QuestionSourceSeed QuestionSource = "seed"
	QuestionSourceAI   QuestionSource = "ai"
)

// Question is an immutable daily reflection prompt. Category and tag are
// optional coarse labels ("growth", "gratitude", ...).
type Question struct {
	ID        int64          `json:"id"`
	Text      string         `json:"text"`
	Category  *string        `json:"category"`
	Tag       *string        `json:"tag"`
	Source    QuestionSource `json:"source"`
	CreatedAt time.Time      `json:"created_at"`
}

// DailyAssignment is the one-per-(user, calendar day) record of which
// question was served. Created lazily on the first "today" fetch.
type DailyAssignment struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
	Date       time.Time `json:"date"`
	Answered   bool      `json:"answered"`
	CreatedAt  time.Time `json:"created_at"`
}

// Answer is unique per (user, question, day); re-answering the same question
// on the same day overwrites the text.
type Answer struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
	Date       time.Time `json:"date"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AnswerWithQuestion joins an answer to its question for history views.
type AnswerWithQuestion struct {
	Answer
	QuestionText     string  `json:"question_text"`
	QuestionCategory *string `json:"question_category"`
}

type Rating struct {
	UserID     int64     `json:"user_id"`
	QuestionID int64     `json:"question_id"`
	Rating     int       `json:"rating"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CategoryRating is one rating row joined to its question's category,
// the input shape for preference estimation.
type CategoryRating struct {
	Category string
	Rating   int
}

// ── Requests / Responses ────────────────────────────────

const (
	PickSourcePreference = "preference"
	PickSourceRandom     = "random"
)

type RecommendedQuestionResponse struct {
	Question Question `json:"question"`
	Source   string   `json:"source"`
}

type TodayQuestionResponse struct {
	Question Question  `json:"question"`
	Date     time.Time `json:"date"`
	Answered bool      `json:"answered"`
}

type AnswerQuestionRequest struct {
	Text string `json:"text"`
	// Date is optional; defaults to the current UTC day.
	Date *time.Time `json:"date,omitempty"`
}

type RateQuestionRequest struct {
	Rating int `json:"rating"`
}

type RatingResponse struct {
	QuestionID int64 `json:"question_id"`
	Rating     *int  `json:"rating"`
}

type UserRatingEntry struct {
	QuestionID   int64     `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Rating       int       `json:"rating"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ── AI Generation ───────────────────────────────────────

type AIConfig struct {
	Endpoint   string `json:"endpoint"`
	APIKey     string `json:"api_key"`
	Model      string `json:"model,omitempty"`
	RolePrompt string `json:"role_prompt,omitempty"`
}

type GenerateQuestionsRequest struct {
	Count  int      `json:"count"`
	Config AIConfig `json:"config"`
	// UsePreferences opts into seeding the prompt with the caller's
	// preferred categories.
	UsePreferences bool `json:"use_preferences"`
}

type GenerateQuestionsResponse struct {
	Questions         []Question `json:"questions"`
	PreferenceApplied bool       `json:"preference_applied"`
	UsedCategories    []string   `json:"used_categories"`
}

type PingAIRequest struct {
	Config AIConfig `json:"config"`
}

type PingAIResponse struct {
	Success   bool   `json:"success"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}
