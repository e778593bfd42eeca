package timeblocks

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

// ── Time Blocks ─────────────────────────────────────────

func (s *Store) CreateBlock(userID int64, req models.TimeBlockRequest) (*models.TimeBlock, error) {
	var b models.TimeBlock
	err := s.db.QueryRow(
		`INSERT INTO time_blocks (user_id, category_id, title, note, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, user_id, category_id, title, note, start_time, end_time, created_at, updated_at`,
		userID, req.CategoryID, req.Title, req.Note, req.StartTime, req.EndTime,
	).Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Title, &b.Note, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create block: %w", err)
	}
	return &b, nil
}

func (s *Store) UpdateBlock(userID, blockID int64, req models.TimeBlockRequest) (*models.TimeBlock, error) {
	var b models.TimeBlock
	err := s.db.QueryRow(
		`UPDATE time_blocks
		 SET category_id = $3, title = $4, note = $5, start_time = $6, end_time = $7, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, category_id, title, note, start_time, end_time, created_at, updated_at`,
		blockID, userID, req.CategoryID, req.Title, req.Note, req.StartTime, req.EndTime,
	).Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Title, &b.Note, &b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update block: %w", err)
	}
	return &b, nil
}

func (s *Store) DeleteBlock(userID, blockID int64) error {
	res, err := s.db.Exec(
		`DELETE FROM time_blocks WHERE id = $1 AND user_id = $2`,
		blockID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListBlocks returns the user's blocks overlapping [from, to), oldest first.
func (s *Store) ListBlocks(userID int64, from, to time.Time) ([]models.TimeBlock, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, category_id, title, note, start_time, end_time, created_at, updated_at
		 FROM time_blocks
		 WHERE user_id = $1 AND start_time < $3 AND end_time > $2
		 ORDER BY start_time`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list blocks: %w", err)
	}
	defer rows.Close()

	var blocks []models.TimeBlock
	for rows.Next() {
		var b models.TimeBlock
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.Title, &b.Note,
			&b.StartTime, &b.EndTime, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

// ── Categories ──────────────────────────────────────────

func (s *Store) CreateCategory(userID int64, req models.CategoryRequest) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(
		`INSERT INTO categories (user_id, name, color)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, name, color, created_at`,
		userID, req.Name, req.Color,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

func (s *Store) UpdateCategory(userID, categoryID int64, req models.CategoryRequest) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(
		`UPDATE categories SET name = $3, color = $4
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, color, created_at`,
		categoryID, userID, req.Name, req.Color,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &c, nil
}

func (s *Store) DeleteCategory(userID, categoryID int64) error {
	res, err := s.db.Exec(
		`DELETE FROM categories WHERE id = $1 AND user_id = $2`,
		categoryID, userID,
	)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *Store) ListCategories(userID int64) ([]models.Category, error) {
	rows, err := s.db.Query(
		`SELECT id, user_id, name, color, created_at
		 FROM categories WHERE user_id = $1 ORDER BY name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
