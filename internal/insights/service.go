package insights

import (
	"fmt"
	"time"

	"github.com/daybook/backend/internal/models"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Streak(userID int64, now time.Time) (int, error) {
	days, err := s.store.AnswerDays(userID)
	if err != nil {
		return 0, err
	}
	return CurrentStreak(days, now), nil
}

func (s *Service) Activity(userID int64, year int) (*models.ActivityResponse, error) {
	counts, err := s.store.DailyCounts(userID, year)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	return &models.ActivityResponse{
		Year:            year,
		Activities:      BuildYearActivity(year, counts),
		TotalActivities: total,
		ActiveDays:      len(counts),
	}, nil
}

func (s *Service) Dashboard(userID int64, now time.Time) (*models.DashboardResponse, error) {
	days, err := s.store.AnswerDays(userID)
	if err != nil {
		return nil, err
	}

	// Weekly progress counts distinct answered days in the trailing week,
	// today included.
	today := now.UTC().Truncate(24 * time.Hour)
	weekStart := today.AddDate(0, 0, -6)
	answeredThisWeek := 0
	for _, d := range days {
		day := d.UTC().Truncate(24 * time.Hour)
		if !day.Before(weekStart) && !day.After(today) {
			answeredThisWeek++
		}
	}

	monthStart := today.AddDate(0, 0, -29)
	tagCounts, err := s.store.CategoryCounts(userID, &monthStart)
	if err != nil {
		return nil, err
	}
	topTags := BuildTagDistribution(tagCounts)
	if len(topTags) > 3 {
		topTags = topTags[:3]
	}
	if topTags == nil {
		topTags = []models.TagCount{}
	}

	return &models.DashboardResponse{
		WeeklyProgress: models.WeeklyProgress{AnsweredDays: answeredThisWeek, TotalDays: 7},
		CurrentStreak:  CurrentStreak(days, now),
		TopTags:        topTags,
	}, nil
}

func (s *Service) Review(userID int64, period string, now time.Time) (*models.ReviewResponse, error) {
	from, err := periodStart(period, now)
	if err != nil {
		return nil, err
	}

	answers, err := s.store.AnswersSince(userID, from)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []models.AnswerWithQuestion{}
	}

	answeredDays := make(map[string]bool)
	for _, a := range answers {
		answeredDays[a.Date.UTC().Format(dayFormat)] = true
	}

	avg := 0.0
	if len(answeredDays) > 0 {
		avg = float64(len(answers)) / float64(len(answeredDays))
	}

	tagCounts, err := s.store.CategoryCounts(userID, from)
	if err != nil {
		return nil, err
	}
	dist := BuildTagDistribution(tagCounts)
	if dist == nil {
		dist = []models.TagCount{}
	}

	highRated, err := s.store.HighRatedQuestions(userID)
	if err != nil {
		return nil, err
	}
	if highRated == nil {
		highRated = []models.HighRatedQuestion{}
	}

	return &models.ReviewResponse{
		Period:             period,
		TotalAnswers:       len(answers),
		AnsweredDays:       len(answeredDays),
		AvgAnswersPerDay:   avg,
		TagDistribution:    dist,
		HighRatedQuestions: highRated,
		Answers:            answers,
	}, nil
}

func (s *Service) Growth(userID int64, limit int) (*models.GrowthResponse, error) {
	if limit <= 0 {
		limit = 5
	}
	if limit > 20 {
		limit = 20
	}

	rows, err := s.store.GrowthRows(userID)
	if err != nil {
		return nil, err
	}

	comparisons := BuildGrowthComparisons(rows, limit)
	if comparisons == nil {
		comparisons = []models.GrowthComparison{}
	}
	return &models.GrowthResponse{Comparisons: comparisons}, nil
}

// periodStart maps a named period onto the start of a half-open
// [from, now) window; "all" means no lower bound.
func periodStart(period string, now time.Time) (*time.Time, error) {
	today := now.UTC().Truncate(24 * time.Hour)
	var from time.Time
	switch period {
	case "week":
		from = today.AddDate(0, 0, -6)
	case "month":
		from = today.AddDate(0, -1, 0)
	case "year":
		from = today.AddDate(-1, 0, 0)
	case "all", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("invalid period %q", period)
	}
	return &from, nil
}
