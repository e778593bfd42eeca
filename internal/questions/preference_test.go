package questions

import (
	"math"
	"testing"

	"github.com/daybook/backend/internal/models"
)

func TestEstimateAffinities(t *testing.T) {
	affinities := EstimateAffinities([]models.CategoryRating{
		{Category: "growth", Rating: 5},
		{Category: "growth", Rating: 5},
		{Category: "growth", Rating: 4},
		{Category: "gratitude", Rating: 2},
		{Category: "gratitude", Rating: 1},
	})

	growth, ok := affinities["growth"]
	if !ok {
		t.Fatal("expected growth affinity")
	}
	if growth.RatingCount != 3 {
		t.Errorf("expected growth count 3, got %d", growth.RatingCount)
	}
	if math.Abs(growth.AverageRating-14.0/3.0) > 1e-9 {
		t.Errorf("expected growth average 4.67, got %.2f", growth.AverageRating)
	}

	gratitude := affinities["gratitude"]
	if gratitude.RatingCount != 2 || gratitude.AverageRating != 1.5 {
		t.Errorf("expected gratitude {1.5, 2}, got %+v", gratitude)
	}
}

func TestEstimateAffinities_Empty(t *testing.T) {
	affinities := EstimateAffinities(nil)
	if len(affinities) != 0 {
		t.Fatalf("expected no affinities, got %d", len(affinities))
	}
	if preferred := PreferredCategories(affinities); len(preferred) != 0 {
		t.Fatalf("expected no preferred categories, got %v", preferred)
	}
}

func TestPreferredCategories_Threshold(t *testing.T) {
	affinities := EstimateAffinities([]models.CategoryRating{
		{Category: "growth", Rating: 5},
		{Category: "growth", Rating: 5},
		{Category: "growth", Rating: 4},
		{Category: "gratitude", Rating: 2},
		{Category: "gratitude", Rating: 1},
		{Category: "career", Rating: 4},
		{Category: "health", Rating: 3},
		{Category: "health", Rating: 5},
	})

	preferred := PreferredCategories(affinities)
	if len(preferred) != 3 {
		t.Fatalf("expected 3 preferred categories, got %v", preferred)
	}

	// Sorted by name: career (4.0, boundary), growth (4.67), health (4.0).
	want := []string{"career", "growth", "health"}
	for i, p := range preferred {
		if p.Category != want[i] {
			t.Errorf("preferred[%d] = %q, want %q", i, p.Category, want[i])
		}
	}
}

func TestPreferredCategories_SingleRatingQualifies(t *testing.T) {
	affinities := EstimateAffinities([]models.CategoryRating{
		{Category: "creativity", Rating: 4},
	})

	preferred := PreferredCategories(affinities)
	if len(preferred) != 1 || preferred[0].Category != "creativity" {
		t.Fatalf("expected single-rating category to qualify, got %v", preferred)
	}
}
