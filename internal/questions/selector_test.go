package questions

import (
	"math/rand"
	"testing"

	"github.com/daybook/backend/internal/models"
)

func makeQuestion(id int64, category string) models.Question {
	q := models.Question{ID: id, Text: "test question", Source: models.QuestionSourceSeed}
	if category != "" {
		q.Category = &category
	}
	return q
}

func testPool() []models.Question {
	return []models.Question{
		makeQuestion(1, "growth"),
		makeQuestion(2, "growth"),
		makeQuestion(3, "growth"),
		makeQuestion(4, "gratitude"),
		makeQuestion(5, "gratitude"),
		makeQuestion(6, ""),
	}
}

func TestPick_NoRatingsAlwaysRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cfg := SelectorConfig{PreferenceRatio: 1.0, HistoryWindow: 10}

	for i := 0; i < 100; i++ {
		q, source := Pick(testPool(), nil, nil, nil, cfg, rng)
		if q == nil {
			t.Fatal("expected a question")
		}
		if source != models.PickSourceRandom {
			t.Fatalf("draw %d: expected source %q with no ratings, got %q", i, models.PickSourceRandom, source)
		}
	}
}

func TestPick_PreferenceRatioOneAlwaysPreferred(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cfg := SelectorConfig{PreferenceRatio: 1.0, HistoryWindow: 10}

	affinities := EstimateAffinities([]models.CategoryRating{
		{Category: "growth", Rating: 5},
		{Category: "growth", Rating: 5},
		{Category: "growth", Rating: 4},
		{Category: "gratitude", Rating: 2},
		{Category: "gratitude", Rating: 1},
	})

	for i := 0; i < 100; i++ {
		q, source := Pick(testPool(), affinities, nil, nil, cfg, rng)
		if source != models.PickSourcePreference {
			t.Fatalf("draw %d: expected source %q, got %q", i, models.PickSourcePreference, source)
		}
		if q.Category == nil || *q.Category != "growth" {
			t.Fatalf("draw %d: expected a growth question, got %+v", i, q)
		}
	}
}

func TestPick_PreferenceRatioZeroAlwaysRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cfg := SelectorConfig{PreferenceRatio: 0.0, HistoryWindow: 10}

	affinities := EstimateAffinities([]models.CategoryRating{
		{Category: "growth", Rating: 5},
	})

	for i := 0; i < 100; i++ {
		_, source := Pick(testPool(), affinities, nil, nil, cfg, rng)
		if source != models.PickSourceRandom {
			t.Fatalf("draw %d: expected source %q, got %q", i, models.PickSourceRandom, source)
		}
	}
}

func TestPick_PreferredCategoryExhaustedFallsBackToRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cfg := SelectorConfig{PreferenceRatio: 1.0, HistoryWindow: 10}

	affinities := EstimateAffinities([]models.CategoryRating{
		{Category: "growth", Rating: 5},
	})

	// All growth questions were served recently.
	exclude := map[int64]bool{1: true, 2: true, 3: true}

	for i := 0; i < 50; i++ {
		q, source := Pick(testPool(), affinities, exclude, nil, cfg, rng)
		if q == nil {
			t.Fatal("expected a question")
		}
		if source != models.PickSourceRandom {
			t.Fatalf("draw %d: expected random fallback, got %q", i, source)
		}
		if q.Category != nil && *q.Category == "growth" {
			t.Fatalf("draw %d: excluded growth question %d was returned", i, q.ID)
		}
	}
}

func TestPick_ExclusionCoveringPoolIsDropped(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := SelectorConfig{PreferenceRatio: 0.5, HistoryWindow: 10}

	exclude := make(map[int64]bool)
	for _, q := range testPool() {
		exclude[q.ID] = true
	}

	q, source := Pick(testPool(), nil, exclude, nil, cfg, rng)
	if q == nil {
		t.Fatal("expected question reuse when exclusion covers the pool")
	}
	if source != models.PickSourceRandom {
		t.Fatalf("expected source %q, got %q", models.PickSourceRandom, source)
	}
}

func TestPick_EmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	cfg := SelectorConfig{PreferenceRatio: 0.5, HistoryWindow: 10}

	q, source := Pick(nil, nil, nil, nil, cfg, rng)
	if q != nil {
		t.Fatalf("expected nil question for empty pool, got %+v", q)
	}
	if source != "" {
		t.Fatalf("expected empty source, got %q", source)
	}
}

func TestPick_CategoryHint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := SelectorConfig{PreferenceRatio: 0.0, HistoryWindow: 10}

	hint := "gratitude"
	for i := 0; i < 50; i++ {
		q, _ := Pick(testPool(), nil, nil, &hint, cfg, rng)
		if q.Category == nil || *q.Category != "gratitude" {
			t.Fatalf("draw %d: expected gratitude question, got %+v", i, q)
		}
	}
}

func TestPick_UnknownHintIsIgnored(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	cfg := SelectorConfig{PreferenceRatio: 0.0, HistoryWindow: 10}

	hint := "no-such-category"
	q, _ := Pick(testPool(), nil, nil, &hint, cfg, rng)
	if q == nil {
		t.Fatal("expected a question when hint matches nothing")
	}
}

func TestPickWeightedCategory_CountWeighting(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	preferred := []CategoryAffinity{
		{Category: "growth", AverageRating: 4.5, RatingCount: 3},
		{Category: "mindfulness", AverageRating: 4.5, RatingCount: 1},
	}

	const draws = 10000
	growth := 0
	for i := 0; i < draws; i++ {
		if pickWeightedCategory(preferred, rng) == "growth" {
			growth++
		}
	}

	// Expect roughly 3/4 of draws to land on the heavier category.
	ratio := float64(growth) / draws
	if ratio < 0.70 || ratio > 0.80 {
		t.Fatalf("expected growth ratio near 0.75, got %.3f", ratio)
	}
}
