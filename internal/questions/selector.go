package questions

import (
	"math/rand"
	"os"
	"strconv"

	"github.com/daybook/backend/internal/models"
)

// SelectorConfig holds the two tunables of the recommendation policy.
// They are explicit values rather than package constants so tests can pin
// the ratio and the service can read them from the environment once.
type SelectorConfig struct {
	// PreferenceRatio is the probability that a draw uses
	// preference-weighted selection instead of uniform-random.
	PreferenceRatio float64
	// HistoryWindow is how many recently served questions to exclude.
	HistoryWindow int
}

func DefaultSelectorConfig() SelectorConfig {
	cfg := SelectorConfig{
		PreferenceRatio: 0.65,
		HistoryWindow:   10,
	}
	if v := os.Getenv("PREFERENCE_RATIO"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.PreferenceRatio = f
		}
	}
	if v := os.Getenv("HISTORY_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.HistoryWindow = n
		}
	}
	return cfg
}

// Pick chooses the next question for a user. It is a pure function over
// (pool, affinities, exclusion set, hint, randomness): no side effects, so
// recording the assignment is a separate store call.
//
// Draws a uniform r in [0,1). When the user has preferred categories and
// r < ratio, a category is chosen weighted by rating count and a question
// is picked uniformly inside it; any dead end falls back to the uniform
// branch. An exclusion set covering the whole pool is dropped rather than
// returning nothing; nil is only returned for a genuinely empty pool.
func Pick(pool []models.Question, affinities map[string]CategoryAffinity, exclude map[int64]bool, categoryHint *string, cfg SelectorConfig, rng *rand.Rand) (*models.Question, string) {
	if len(pool) == 0 {
		return nil, ""
	}

	eligible := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if !exclude[q.ID] {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		// Everything was served recently — reuse rather than starve.
		eligible = pool
	}

	if categoryHint != nil {
		if hinted := filterByCategory(eligible, *categoryHint); len(hinted) > 0 {
			eligible = hinted
		}
	}

	preferred := PreferredCategories(affinities)
	if len(preferred) > 0 && rng.Float64() < cfg.PreferenceRatio {
		category := pickWeightedCategory(preferred, rng)
		if candidates := filterByCategory(eligible, category); len(candidates) > 0 {
			q := candidates[rng.Intn(len(candidates))]
			return &q, models.PickSourcePreference
		}
		// Chosen category exhausted — fall through to the random branch.
	}

	q := eligible[rng.Intn(len(eligible))]
	return &q, models.PickSourceRandom
}

// pickWeightedCategory draws a category with probability proportional to
// its rating count. Equal counts get equal probability mass, which is the
// uniform tie-break.
func pickWeightedCategory(preferred []CategoryAffinity, rng *rand.Rand) string {
	total := 0
	for _, p := range preferred {
		total += p.RatingCount
	}
	r := rng.Intn(total)
	for _, p := range preferred {
		r -= p.RatingCount
		if r < 0 {
			return p.Category
		}
	}
	return preferred[len(preferred)-1].Category
}

func filterByCategory(pool []models.Question, category string) []models.Question {
	var out []models.Question
	for _, q := range pool {
		if q.Category != nil && *q.Category == category {
			out = append(out, q)
		}
	}
	return out
}
