package models

import "time"

// ── Streak & Activity ───────────────────────────────────

type StreakResponse struct {
	CurrentStreak int `json:"current_streak"`
}

// ActivityDay is one calendar day in the heatmap. Level buckets the answer
// count into 0-4: {0→0, 1-2→1, 3-4→2, 5-6→3, 7+→4}.
type ActivityDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

type ActivityResponse struct {
	Year            int           `json:"year"`
	Activities      []ActivityDay `json:"activities"`
	TotalActivities int           `json:"total_activities"`
	ActiveDays      int           `json:"active_days"`
}

// ── Dashboard ───────────────────────────────────────────

type WeeklyProgress struct {
	AnsweredDays int `json:"answered_days"`
	TotalDays    int `json:"total_days"`
}

type DashboardResponse struct {
	WeeklyProgress WeeklyProgress `json:"weekly_progress"`
	CurrentStreak  int            `json:"current_streak"`
	TopTags        []TagCount     `json:"top_tags"`
}

// ── Review ──────────────────────────────────────────────

type TagCount struct {
	Tag        string  `json:"tag"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type HighRatedQuestion struct {
	QuestionID   int64  `json:"question_id"`
	QuestionText string `json:"question_text"`
	Rating       int    `json:"rating"`
}

type ReviewResponse struct {
	Period             string               `json:"period"`
	TotalAnswers       int                  `json:"total_answers"`
	AnsweredDays       int                  `json:"answered_days"`
	AvgAnswersPerDay   float64              `json:"avg_answers_per_day"`
	TagDistribution    []TagCount           `json:"tag_distribution"`
	HighRatedQuestions []HighRatedQuestion  `json:"high_rated_questions"`
	Answers            []AnswerWithQuestion `json:"answers"`
}

// ── Growth Comparison ───────────────────────────────────

type GrowthAnswer struct {
	Date         time.Time `json:"date"`
	Text         string    `json:"text"`
	QuestionText string    `json:"question_text"`
}

type GrowthComparison struct {
	Category     string         `json:"category"`
	TotalAnswers int            `json:"total_answers"`
	FirstAnswer  GrowthAnswer   `json:"first_answer"`
	LatestAnswer GrowthAnswer   `json:"latest_answer"`
	AllAnswers   []GrowthAnswer `json:"all_answers"`
}

type GrowthResponse struct {
	Comparisons []GrowthComparison `json:"comparisons"`
}
