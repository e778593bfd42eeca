package insights

import (
	"testing"
	"time"

	"github.com/daybook/backend/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ── Streak ──────────────────────────────────────────────

func TestCurrentStreak_ConsecutiveDays(t *testing.T) {
	today := day(2026, 3, 10)
	days := []time.Time{today, today.AddDate(0, 0, -1), today.AddDate(0, 0, -2)}

	if got := CurrentStreak(days, today); got != 3 {
		t.Errorf("streak on the last answered day = %d, want 3", got)
	}

	// The next morning, before answering, the streak holds.
	if got := CurrentStreak(days, today.AddDate(0, 0, 1)); got != 3 {
		t.Errorf("streak one day later = %d, want 3", got)
	}

	// Two days without an answer breaks it.
	if got := CurrentStreak(days, today.AddDate(0, 0, 2)); got != 0 {
		t.Errorf("streak two days later = %d, want 0", got)
	}
}

func TestCurrentStreak_GapStopsWalk(t *testing.T) {
	today := day(2026, 3, 10)
	days := []time.Time{
		today,
		today.AddDate(0, 0, -1),
		// gap at -2
		today.AddDate(0, 0, -3),
		today.AddDate(0, 0, -4),
	}

	if got := CurrentStreak(days, today); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

func TestCurrentStreak_Empty(t *testing.T) {
	if got := CurrentStreak(nil, day(2026, 3, 10)); got != 0 {
		t.Errorf("streak with no answers = %d, want 0", got)
	}
}

func TestCurrentStreak_SingleDay(t *testing.T) {
	today := day(2026, 3, 10)
	if got := CurrentStreak([]time.Time{today}, today); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestCurrentStreak_DuplicateDaysCountOnce(t *testing.T) {
	today := day(2026, 3, 10)
	days := []time.Time{today, today, today.AddDate(0, 0, -1)}
	if got := CurrentStreak(days, today); got != 2 {
		t.Errorf("streak with duplicate days = %d, want 2", got)
	}
}

func TestCurrentStreak_TimeOfDayIgnored(t *testing.T) {
	today := day(2026, 3, 10)
	days := []time.Time{
		time.Date(2026, 3, 10, 23, 15, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 6, 0, 0, 0, time.UTC),
	}
	if got := CurrentStreak(days, today); got != 2 {
		t.Errorf("streak = %d, want 2", got)
	}
}

// ── Activity ────────────────────────────────────────────

func TestActivityLevel_Thresholds(t *testing.T) {
	cases := []struct {
		count, level int
	}{
		{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {6, 3}, {7, 4}, {12, 4},
	}
	for _, c := range cases {
		if got := ActivityLevel(c.count); got != c.level {
			t.Errorf("ActivityLevel(%d) = %d, want %d", c.count, got, c.level)
		}
	}
}

func TestBuildYearActivity_DenseFill(t *testing.T) {
	days := BuildYearActivity(2025, map[string]int{
		"2025-03-01": 2,
		"2025-07-14": 5,
	})

	if len(days) != 365 {
		t.Fatalf("expected 365 entries for 2025, got %d", len(days))
	}

	byDate := make(map[string]models.ActivityDay)
	for _, d := range days {
		byDate[d.Date] = d
	}

	if d := byDate["2025-03-01"]; d.Count != 2 || d.Level != 1 {
		t.Errorf("2025-03-01 = %+v, want count 2 level 1", d)
	}
	if d := byDate["2025-07-14"]; d.Count != 5 || d.Level != 3 {
		t.Errorf("2025-07-14 = %+v, want count 5 level 3", d)
	}
	if d := byDate["2025-01-01"]; d.Count != 0 || d.Level != 0 {
		t.Errorf("2025-01-01 = %+v, want zero entry", d)
	}
	if days[0].Date != "2025-01-01" || days[364].Date != "2025-12-31" {
		t.Errorf("year boundaries wrong: first %s, last %s", days[0].Date, days[364].Date)
	}
}

func TestBuildYearActivity_LeapYear(t *testing.T) {
	days := BuildYearActivity(2024, nil)
	if len(days) != 366 {
		t.Fatalf("expected 366 entries for 2024, got %d", len(days))
	}
}

// ── Tag Distribution ────────────────────────────────────

func TestBuildTagDistribution(t *testing.T) {
	dist := BuildTagDistribution(map[string]int{
		"growth":    6,
		"gratitude": 3,
		"career":    1,
	})

	if len(dist) != 3 {
		t.Fatalf("expected 3 tags, got %d", len(dist))
	}
	if dist[0].Tag != "growth" || dist[0].Count != 6 {
		t.Errorf("expected growth first, got %+v", dist[0])
	}
	if dist[0].Percentage != 60.0 {
		t.Errorf("expected growth at 60%%, got %.1f", dist[0].Percentage)
	}
	if dist[2].Tag != "career" || dist[2].Percentage != 10.0 {
		t.Errorf("expected career last at 10%%, got %+v", dist[2])
	}
}

func TestBuildTagDistribution_Empty(t *testing.T) {
	if dist := BuildTagDistribution(nil); len(dist) != 0 {
		t.Fatalf("expected empty distribution, got %v", dist)
	}
}

// ── Growth Comparison ───────────────────────────────────

func TestBuildGrowthComparisons(t *testing.T) {
	rows := []GrowthRow{
		{Category: "growth", Date: day(2026, 1, 5), Text: "first growth"},
		{Category: "gratitude", Date: day(2026, 1, 6), Text: "first gratitude"},
		{Category: "growth", Date: day(2026, 2, 1), Text: "second growth"},
		{Category: "gratitude", Date: day(2026, 2, 2), Text: "second gratitude"},
		{Category: "growth", Date: day(2026, 3, 1), Text: "third growth"},
		{Category: "career", Date: day(2026, 3, 2), Text: "only career"},
	}

	comparisons := BuildGrowthComparisons(rows, 10)

	// career has a single answer, so nothing to compare.
	if len(comparisons) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(comparisons))
	}

	growth := comparisons[0]
	if growth.Category != "growth" || growth.TotalAnswers != 3 {
		t.Fatalf("expected growth with 3 answers first, got %+v", growth)
	}
	if growth.FirstAnswer.Text != "first growth" {
		t.Errorf("first answer = %q, want %q", growth.FirstAnswer.Text, "first growth")
	}
	if growth.LatestAnswer.Text != "third growth" {
		t.Errorf("latest answer = %q, want %q", growth.LatestAnswer.Text, "third growth")
	}
	if len(growth.AllAnswers) != 3 {
		t.Errorf("expected 3 chronological answers, got %d", len(growth.AllAnswers))
	}
}

func TestBuildGrowthComparisons_Limit(t *testing.T) {
	rows := []GrowthRow{
		{Category: "growth", Date: day(2026, 1, 1)},
		{Category: "growth", Date: day(2026, 1, 2)},
		{Category: "growth", Date: day(2026, 1, 3)},
		{Category: "gratitude", Date: day(2026, 1, 4)},
		{Category: "gratitude", Date: day(2026, 1, 5)},
	}

	comparisons := BuildGrowthComparisons(rows, 1)
	if len(comparisons) != 1 {
		t.Fatalf("expected limit of 1, got %d", len(comparisons))
	}
	if comparisons[0].Category != "growth" {
		t.Errorf("expected the most-answered category kept, got %q", comparisons[0].Category)
	}
}
