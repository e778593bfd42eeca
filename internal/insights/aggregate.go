package insights

import (
	"sort"
	"time"

	"github.com/daybook/backend/internal/models"
)

const dayFormat = "2006-01-02"

// CurrentStreak counts consecutive answered calendar days ending at today,
// or at yesterday when today has no answer yet. days must be day-truncated
// UTC; duplicates are fine.
func CurrentStreak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	answered := make(map[string]bool, len(days))
	for _, d := range days {
		answered[d.UTC().Truncate(24*time.Hour).Format(dayFormat)] = true
	}

	anchor := today.UTC().Truncate(24 * time.Hour)
	if !answered[anchor.Format(dayFormat)] {
		// Today not answered yet — the streak is not broken until the
		// day after tomorrow's walk would start at a gap.
		anchor = anchor.AddDate(0, 0, -1)
		if !answered[anchor.Format(dayFormat)] {
			return 0
		}
	}

	streak := 0
	for answered[anchor.Format(dayFormat)] {
		streak++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return streak
}

// ActivityLevel buckets a daily answer count into the 0-4 heatmap scale.
func ActivityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 2:
		return 1
	case count <= 4:
		return 2
	case count <= 6:
		return 3
	default:
		return 4
	}
}

// BuildYearActivity emits one entry per calendar day of the year (dense
// fill), so the heatmap consumer never handles gaps.
func BuildYearActivity(year int, counts map[string]int) []models.ActivityDay {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	var days []models.ActivityDay
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayFormat)
		count := counts[key]
		days = append(days, models.ActivityDay{
			Date:  key,
			Count: count,
			Level: ActivityLevel(count),
		})
	}
	return days
}

// BuildTagDistribution converts raw per-tag counts into percentage entries
// sorted by count descending (ties by name for stable output).
func BuildTagDistribution(counts map[string]int) []models.TagCount {
	total := 0
	for _, c := range counts {
		total += c
	}

	dist := make([]models.TagCount, 0, len(counts))
	for tag, count := range counts {
		pct := 0.0
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		dist = append(dist, models.TagCount{Tag: tag, Count: count, Percentage: pct})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Tag < dist[j].Tag
	})
	return dist
}

// GrowthRow is one answer joined to its question's category, the input
// shape for growth comparisons. Rows must be in chronological order.
type GrowthRow struct {
	Category     string
	Date         time.Time
	Text         string
	QuestionText string
}

// BuildGrowthComparisons groups answers by category and keeps categories
// with at least two answers, so there is something to compare. Categories
// with the most answers come first; at most limit are returned.
func BuildGrowthComparisons(rows []GrowthRow, limit int) []models.GrowthComparison {
	byCategory := make(map[string][]models.GrowthAnswer)
	for _, r := range rows {
		byCategory[r.Category] = append(byCategory[r.Category], models.GrowthAnswer{
			Date:         r.Date,
			Text:         r.Text,
			QuestionText: r.QuestionText,
		})
	}

	var comparisons []models.GrowthComparison
	for category, answers := range byCategory {
		if len(answers) < 2 {
			continue
		}
		comparisons = append(comparisons, models.GrowthComparison{
			Category:     category,
			TotalAnswers: len(answers),
			FirstAnswer:  answers[0],
			LatestAnswer: answers[len(answers)-1],
			AllAnswers:   answers,
		})
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].TotalAnswers != comparisons[j].TotalAnswers {
			return comparisons[i].TotalAnswers > comparisons[j].TotalAnswers
		}
		return comparisons[i].Category < comparisons[j].Category
	})

	if limit > 0 && len(comparisons) > limit {
		comparisons = comparisons[:limit]
	}
	return comparisons
}
