package questions

import (
	"sort"

	"github.com/daybook/backend/internal/models"
)

// A category counts as preferred once its average rating reaches this.
const preferredAvgThreshold = 4.0

// CategoryAffinity is the derived per-category rating aggregate.
type CategoryAffinity struct {
	Category      string  `json:"category"`
	AverageRating float64 `json:"average_rating"`
	RatingCount   int     `json:"rating_count"`
}

// EstimateAffinities folds a user's rating history (joined to question
// category) into per-category averages and counts. Rows with no category
// are ignored by the store query before we get here.
func EstimateAffinities(rows []models.CategoryRating) map[string]CategoryAffinity {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range rows {
		sums[r.Category] += r.Rating
		counts[r.Category]++
	}

	affinities := make(map[string]CategoryAffinity, len(counts))
	for cat, count := range counts {
		affinities[cat] = CategoryAffinity{
			Category:      cat,
			AverageRating: float64(sums[cat]) / float64(count),
			RatingCount:   count,
		}
	}
	return affinities
}

// PreferredCategories returns the affinities that qualify for
// preference-weighted selection (average >= 4.0, at least one rating),
// sorted by category name for deterministic iteration.
func PreferredCategories(affinities map[string]CategoryAffinity) []CategoryAffinity {
	var preferred []CategoryAffinity
	for _, a := range affinities {
		if a.AverageRating >= preferredAvgThreshold && a.RatingCount >= 1 {
			preferred = append(preferred, a)
		}
	}
	sort.Slice(preferred, func(i, j int) bool {
		return preferred[i].Category < preferred[j].Category
	})
	return preferred
}
