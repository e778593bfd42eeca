package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "daybook_user")
	password := getEnv("DB_PASSWORD", "daybook_password")
	dbname := getEnv("DB_NAME", "daybook")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);

	CREATE TABLE IF NOT EXISTS categories (
		id         BIGSERIAL PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name       VARCHAR(100) NOT NULL,
		color      VARCHAR(20) NOT NULL DEFAULT '#6b7280',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, name)
	);

	CREATE TABLE IF NOT EXISTS time_blocks (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
		title       VARCHAR(255) NOT NULL,
		note        TEXT NOT NULL DEFAULT '',
		start_time  TIMESTAMP WITH TIME ZONE NOT NULL,
		end_time    TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		CHECK(end_time > start_time)
	);

	CREATE TABLE IF NOT EXISTS questions (
		id         BIGSERIAL PRIMARY KEY,
		text       TEXT NOT NULL,
		category   VARCHAR(50),
		tag        VARCHAR(50),
		source     VARCHAR(20) NOT NULL DEFAULT 'seed',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS user_daily_questions (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		answered    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, date)
	);

	CREATE TABLE IF NOT EXISTS question_answers (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		answer_text TEXT NOT NULL,
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, question_id, date)
	);

	CREATE TABLE IF NOT EXISTS question_ratings (
		id          BIGSERIAL PRIMARY KEY,
		user_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		question_id BIGINT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
		rating      INT NOT NULL CHECK (rating >= 1 AND rating <= 5),
		created_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at  TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		UNIQUE(user_id, question_id)
	);
	`

	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_blocks_user_start ON time_blocks(user_id, start_time)`,
		`CREATE INDEX IF NOT EXISTS idx_questions_category ON questions(category)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_user_date ON user_daily_questions(user_id, date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_answers_user_date ON question_answers(user_id, date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_answers_user_question ON question_answers(user_id, question_id)`,
		`CREATE INDEX IF NOT EXISTS idx_ratings_user ON question_ratings(user_id)`,
	}
	for _, stmt := range indexes {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create index failed: %w", err)
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
