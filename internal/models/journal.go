package models

import "time"

// Category is a user-defined label for time blocks ("deep work", "rest", ...).
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// TimeBlock is one tracked span of a user's day.
type TimeBlock struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CategoryID *int64    `json:"category_id"`
	Title      string    `json:"title"`
	Note       string    `json:"note,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TimeBlockRequest struct {
	CategoryID *int64    `json:"category_id"`
	Title      string    `json:"title"`
	Note       string    `json:"note"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}
