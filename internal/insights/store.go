package insights

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/daybook/backend/internal/models"
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// AnswerDays returns the distinct calendar days on which the user answered
// anything, newest first.
func (s *Store) AnswerDays(userID int64) ([]time.Time, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT date FROM question_answers WHERE user_id = $1 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("answer days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan answer day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// DailyCounts returns answers-per-day for one calendar year, keyed by
// "2006-01-02". Days without answers are absent; dense fill happens in
// BuildYearActivity.
func (s *Store) DailyCounts(userID int64, year int) (map[string]int, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	rows, err := s.db.Query(
		`SELECT date, COUNT(*) FROM question_answers
		 WHERE user_id = $1 AND date >= $2 AND date < $3
		 GROUP BY date`,
		userID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("daily counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var d time.Time
		var c int
		if err := rows.Scan(&d, &c); err != nil {
			return nil, fmt.Errorf("scan daily count: %w", err)
		}
		counts[d.Format(dayFormat)] = c
	}
	return counts, rows.Err()
}

// CategoryCounts returns answers per question category from `from` onward
// (all time when from is nil). Uncategorized questions count under
// "uncategorized".
func (s *Store) CategoryCounts(userID int64, from *time.Time) (map[string]int, error) {
	query := `SELECT COALESCE(q.category, 'uncategorized'), COUNT(*)
	          FROM question_answers a
	          JOIN questions q ON q.id = a.question_id
	          WHERE a.user_id = $1`
	args := []interface{}{userID}
	if from != nil {
		query += ` AND a.date >= $2`
		args = append(args, *from)
	}
	query += ` GROUP BY 1`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("category counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var cat string
		var c int
		if err := rows.Scan(&cat, &c); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		counts[cat] = c
	}
	return counts, rows.Err()
}

func (s *Store) AnswersSince(userID int64, from *time.Time) ([]models.AnswerWithQuestion, error) {
	query := `SELECT a.id, a.user_id, a.question_id, a.date, a.answer_text,
	                 a.created_at, a.updated_at, q.text, q.category
	          FROM question_answers a
	          JOIN questions q ON q.id = a.question_id
	          WHERE a.user_id = $1`
	args := []interface{}{userID}
	if from != nil {
		query += ` AND a.date >= $2`
		args = append(args, *from)
	}
	query += ` ORDER BY a.date DESC, a.updated_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("answers since: %w", err)
	}
	defer rows.Close()

	var answers []models.AnswerWithQuestion
	for rows.Next() {
		var a models.AnswerWithQuestion
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuestionID, &a.Date, &a.Text,
			&a.CreatedAt, &a.UpdatedAt, &a.QuestionText, &a.QuestionCategory); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (s *Store) HighRatedQuestions(userID int64) ([]models.HighRatedQuestion, error) {
	rows, err := s.db.Query(
		`SELECT r.question_id, q.text, r.rating
		 FROM question_ratings r
		 JOIN questions q ON q.id = r.question_id
		 WHERE r.user_id = $1 AND r.rating >= 4
		 ORDER BY r.rating DESC, r.updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("high rated questions: %w", err)
	}
	defer rows.Close()

	var out []models.HighRatedQuestion
	for rows.Next() {
		var h models.HighRatedQuestion
		if err := rows.Scan(&h.QuestionID, &h.QuestionText, &h.Rating); err != nil {
			return nil, fmt.Errorf("scan high rated: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// GrowthRows returns categorized answers in chronological order, the input
// for growth comparisons.
func (s *Store) GrowthRows(userID int64) ([]GrowthRow, error) {
	rows, err := s.db.Query(
		`SELECT q.category, a.date, a.answer_text, q.text
		 FROM question_answers a
		 JOIN questions q ON q.id = a.question_id
		 WHERE a.user_id = $1 AND q.category IS NOT NULL
		 ORDER BY a.date ASC, a.id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("growth rows: %w", err)
	}
	defer rows.Close()

	var out []GrowthRow
	for rows.Next() {
		var r GrowthRow
		if err := rows.Scan(&r.Category, &r.Date, &r.Text, &r.QuestionText); err != nil {
			return nil, fmt.Errorf("scan growth row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
