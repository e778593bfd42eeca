package questions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/daybook/backend/internal/generator"
	"github.com/daybook/backend/internal/models"
)

// ValidationError marks bad input rejected before any state mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type Service struct {
	store *Store
	cfg   SelectorConfig
}

func NewService(store *Store) *Service {
	cfg := DefaultSelectorConfig()
	log.Printf("[recommend] preference_ratio=%.2f history_window=%d", cfg.PreferenceRatio, cfg.HistoryWindow)
	return &Service{store: store, cfg: cfg}
}

// ── Recommendation ──────────────────────────────────────

// Recommend picks the next question without persisting anything.
func (s *Service) Recommend(userID int64, categoryHint *string) (*models.RecommendedQuestionResponse, error) {
	question, source, err := s.pick(userID, categoryHint)
	if err != nil {
		return nil, err
	}
	return &models.RecommendedQuestionResponse{Question: *question, Source: source}, nil
}

// Today returns the user's question of the day, assigning one lazily on
// first fetch. Repeat calls on the same day return the same question.
func (s *Service) Today(userID int64, now time.Time) (*models.TodayQuestionResponse, error) {
	day := truncateDay(now)

	assignment, err := s.store.GetAssignment(userID, day)
	if errors.Is(err, models.ErrNotFound) {
		question, _, pickErr := s.pick(userID, nil)
		if pickErr != nil {
			return nil, pickErr
		}
		assignment, err = s.store.CreateAssignment(userID, question.ID, day)
	}
	if err != nil {
		return nil, err
	}

	question, err := s.store.GetQuestion(assignment.QuestionID)
	if err != nil {
		return nil, err
	}

	return &models.TodayQuestionResponse{
		Question: *question,
		Date:     assignment.Date,
		Answered: assignment.Answered,
	}, nil
}

func (s *Service) pick(userID int64, categoryHint *string) (*models.Question, string, error) {
	pool, err := s.store.ListQuestions()
	if err != nil {
		return nil, "", err
	}

	ratings, err := s.store.CategoryRatings(userID)
	if err != nil {
		return nil, "", err
	}

	exclude, err := s.store.RecentQuestionIDs(userID, s.cfg.HistoryWindow)
	if err != nil {
		return nil, "", err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	question, source := Pick(pool, EstimateAffinities(ratings), exclude, categoryHint, s.cfg, rng)
	if question == nil {
		return nil, "", fmt.Errorf("question pool is empty")
	}
	return question, source, nil
}

// ── Answer Recorder ─────────────────────────────────────

// RecordAnswer upserts the answer for (user, question, day) and marks the
// day's assignment answered, creating the assignment row when the question
// was obtained outside the today flow.
func (s *Service) RecordAnswer(userID, questionID int64, date time.Time, text string) (*models.Answer, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Msg: "answer text must not be empty"}
	}

	if _, err := s.store.GetQuestion(questionID); err != nil {
		return nil, err
	}

	day := truncateDay(date)
	answer, err := s.store.UpsertAnswer(userID, questionID, day, text)
	if err != nil {
		return nil, err
	}

	if err := s.store.MarkDayAnswered(userID, questionID, day); err != nil {
		log.Printf("WARN: failed to mark day answered for user %d: %v", userID, err)
	}

	return answer, nil
}

func (s *Service) ListAnswers(userID int64, limit int) ([]models.AnswerWithQuestion, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	answers, err := s.store.ListAnswers(userID, limit)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []models.AnswerWithQuestion{}
	}
	return answers, nil
}

// ── Ratings ─────────────────────────────────────────────

func (s *Service) Rate(userID, questionID int64, rating int) (*models.Rating, error) {
	if rating < 1 || rating > 5 {
		return nil, &ValidationError{Msg: "rating must be between 1 and 5"}
	}
	if _, err := s.store.GetQuestion(questionID); err != nil {
		return nil, err
	}
	return s.store.UpsertRating(userID, questionID, rating)
}

func (s *Service) GetRating(userID, questionID int64) (*models.RatingResponse, error) {
	if _, err := s.store.GetQuestion(questionID); err != nil {
		return nil, err
	}
	rating, err := s.store.GetRating(userID, questionID)
	if err != nil {
		return nil, err
	}
	return &models.RatingResponse{QuestionID: questionID, Rating: rating}, nil
}

func (s *Service) ListRatings(userID int64, limit int) ([]models.UserRatingEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	entries, err := s.store.ListRatings(userID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.UserRatingEntry{}
	}
	return entries, nil
}

// ── AI Generation ───────────────────────────────────────

// GenerateQuestions requests freeform questions from the user's configured
// provider, optionally steering it toward the user's preferred categories,
// and persists the results into the question pool.
func (s *Service) GenerateQuestions(ctx context.Context, userID int64, req models.GenerateQuestionsRequest) (*models.GenerateQuestionsResponse, error) {
	if req.Count <= 0 {
		req.Count = 5
	}
	if req.Count > 20 {
		req.Count = 20
	}

	var usedCategories []string
	if req.UsePreferences {
		ratings, err := s.store.CategoryRatings(userID)
		if err != nil {
			return nil, err
		}
		for _, a := range PreferredCategories(EstimateAffinities(ratings)) {
			usedCategories = append(usedCategories, a.Category)
		}
	}

	generated, err := generator.Generate(ctx, generator.Config{
		Endpoint:   req.Config.Endpoint,
		APIKey:     req.Config.APIKey,
		Model:      req.Config.Model,
		RolePrompt: req.Config.RolePrompt,
	}, req.Count, usedCategories)
	if err != nil {
		return nil, err
	}

	// Inserts are not transactional: questions persisted before a failure
	// stay in the pool. The pool is additive and never referenced by batch.
	questions := make([]models.Question, 0, len(generated))
	for _, g := range generated {
		var category *string
		if g.Category != "" {
			c := g.Category
			category = &c
		}
		q, err := s.store.InsertQuestion(g.Question, category, nil, models.QuestionSourceAI)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}

	log.Printf("[ai-gen] user=%d generated=%d preference_applied=%v", userID, len(questions), len(usedCategories) > 0)

	if usedCategories == nil {
		usedCategories = []string{}
	}
	return &models.GenerateQuestionsResponse{
		Questions:         questions,
		PreferenceApplied: len(usedCategories) > 0,
		UsedCategories:    usedCategories,
	}, nil
}

func (s *Service) PingAI(ctx context.Context, cfg models.AIConfig) models.PingAIResponse {
	latency, err := generator.Ping(ctx, generator.Config{
		Endpoint: cfg.Endpoint,
		APIKey:   cfg.APIKey,
		Model:    cfg.Model,
	})
	if err != nil {
		return models.PingAIResponse{Success: false, Error: err.Error()}
	}
	return models.PingAIResponse{Success: true, LatencyMs: latency}
}

// truncateDay strips the time-of-day component; all uniqueness and streak
// logic works on UTC calendar days.
func truncateDay(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
