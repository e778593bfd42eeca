package questions

import (
	"database/sql"
	"errors"
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

// ── Question Pool ───────────────────────────────────────

func (s *Store) ListQuestions() ([]models.Question, error) {
	rows, err := s.db.Query(
		`SELECT id, text, category, tag, source, created_at FROM questions ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Category, &q.Tag, &q.Source, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *Store) GetQuestion(questionID int64) (*models.Question, error) {
	var q models.Question
	err := s.db.QueryRow(
		`SELECT id, text, category, tag, source, created_at FROM questions WHERE id = $1`,
		questionID,
	).Scan(&q.ID, &q.Text, &q.Category, &q.Tag, &q.Source, &q.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	return &q, nil
}

func (s *Store) CountQuestions() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count)
	return count, err
}

func (s *Store) InsertQuestion(text string, category, tag *string, source models.QuestionSource) (*models.Question, error) {
	var q models.Question
	err := s.db.QueryRow(
		`INSERT INTO questions (text, category, tag, source)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, text, category, tag, source, created_at`,
		text, category, tag, source,
	).Scan(&q.ID, &q.Text, &q.Category, &q.Tag, &q.Source, &q.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert question: %w", err)
	}
	return &q, nil
}

// ── Daily Assignments ───────────────────────────────────

func (s *Store) GetAssignment(userID int64, date time.Time) (*models.DailyAssignment, error) {
	var a models.DailyAssignment
	err := s.db.QueryRow(
		`SELECT id, user_id, question_id, date, answered, created_at
		 FROM user_daily_questions WHERE user_id = $1 AND date = $2`,
		userID, date,
	).Scan(&a.ID, &a.UserID, &a.QuestionID, &a.Date, &a.Answered, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return &a, nil
}

// CreateAssignment records which question was served for a day. The unique
// (user_id, date) constraint makes concurrent first-fetches converge on one
// row; the winner's question is returned either way.
func (s *Store) CreateAssignment(userID, questionID int64, date time.Time) (*models.DailyAssignment, error) {
	_, err := s.db.Exec(
		`INSERT INTO user_daily_questions (user_id, question_id, date)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, date) DO NOTHING`,
		userID, questionID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("create assignment: %w", err)
	}
	return s.GetAssignment(userID, date)
}

// RecentQuestionIDs returns the question IDs of the user's most recent
// daily assignments, newest first, capped at window.
func (s *Store) RecentQuestionIDs(userID int64, window int) (map[int64]bool, error) {
	if window <= 0 {
		return map[int64]bool{}, nil
	}
	rows, err := s.db.Query(
		`SELECT question_id FROM user_daily_questions
		 WHERE user_id = $1 ORDER BY date DESC LIMIT $2`,
		userID, window,
	)
	if err != nil {
		return nil, fmt.Errorf("recent question ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan question id: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// MarkDayAnswered flips the day's assignment to answered, creating the row
// if the user answered a question obtained outside the today flow.
func (s *Store) MarkDayAnswered(userID, questionID int64, date time.Time) error {
	_, err := s.db.Exec(
		`INSERT INTO user_daily_questions (user_id, question_id, date, answered)
		 VALUES ($1, $2, $3, TRUE)
		 ON CONFLICT (user_id, date) DO UPDATE SET answered = TRUE`,
		userID, questionID, date,
	)
	if err != nil {
		return fmt.Errorf("mark day answered: %w", err)
	}
	return nil
}

// ── Answers ─────────────────────────────────────────────

// UpsertAnswer writes the answer for (user, question, day); a repeat answer
// on the same day overwrites the text (last write wins).
func (s *Store) UpsertAnswer(userID, questionID int64, date time.Time, text string) (*models.Answer, error) {
	var a models.Answer
	err := s.db.QueryRow(
		`INSERT INTO question_answers (user_id, question_id, date, answer_text)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, question_id, date)
		 DO UPDATE SET answer_text = EXCLUDED.answer_text, updated_at = NOW()
		 RETURNING id, user_id, question_id, date, answer_text, created_at, updated_at`,
		userID, questionID, date, text,
	).Scan(&a.ID, &a.UserID, &a.QuestionID, &a.Date, &a.Text, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert answer: %w", err)
	}
	return &a, nil
}

func (s *Store) ListAnswers(userID int64, limit int) ([]models.AnswerWithQuestion, error) {
	rows, err := s.db.Query(
		`SELECT a.id, a.user_id, a.question_id, a.date, a.answer_text,
		        a.created_at, a.updated_at, q.text, q.category
		 FROM question_answers a
		 JOIN questions q ON q.id = a.question_id
		 WHERE a.user_id = $1
		 ORDER BY a.date DESC, a.updated_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
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

// ── Ratings ─────────────────────────────────────────────

func (s *Store) UpsertRating(userID, questionID int64, rating int) (*models.Rating, error) {
	var r models.Rating
	err := s.db.QueryRow(
		`INSERT INTO question_ratings (user_id, question_id, rating)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, question_id)
		 DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()
		 RETURNING user_id, question_id, rating, updated_at`,
		userID, questionID, rating,
	).Scan(&r.UserID, &r.QuestionID, &r.Rating, &r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert rating: %w", err)
	}
	return &r, nil
}

// GetRating returns the user's rating for a question, or nil when unrated.
func (s *Store) GetRating(userID, questionID int64) (*int, error) {
	var rating int
	err := s.db.QueryRow(
		`SELECT rating FROM question_ratings WHERE user_id = $1 AND question_id = $2`,
		userID, questionID,
	).Scan(&rating)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rating, nil
}

func (s *Store) ListRatings(userID int64, limit int) ([]models.UserRatingEntry, error) {
	rows, err := s.db.Query(
		`SELECT r.question_id, q.text, r.rating, r.updated_at
		 FROM question_ratings r
		 JOIN questions q ON q.id = r.question_id
		 WHERE r.user_id = $1
		 ORDER BY r.updated_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var entries []models.UserRatingEntry
	for rows.Next() {
		var e models.UserRatingEntry
		if err := rows.Scan(&e.QuestionID, &e.QuestionText, &e.Rating, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CategoryRatings loads the rating rows that feed preference estimation.
// Questions without a category carry no affinity signal and are skipped.
func (s *Store) CategoryRatings(userID int64) ([]models.CategoryRating, error) {
	rows, err := s.db.Query(
		`SELECT q.category, r.rating
		 FROM question_ratings r
		 JOIN questions q ON q.id = r.question_id
		 WHERE r.user_id = $1 AND q.category IS NOT NULL`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("category ratings: %w", err)
	}
	defer rows.Close()

	var out []models.CategoryRating
	for rows.Next() {
		var cr models.CategoryRating
		if err := rows.Scan(&cr.Category, &cr.Rating); err != nil {
			return nil, fmt.Errorf("scan category rating: %w", err)
		}
		out = append(out, cr)
	}
	return out, rows.Err()
}
