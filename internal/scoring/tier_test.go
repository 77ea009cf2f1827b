package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyScore_BandBoundaries(t *testing.T) {
	cases := []struct {
		score int
		name  string
	}{
		{0, "FREEZING"},
		{20, "FREEZING"},
		{21, "COLD"},
		{40, "COLD"},
		{41, "LUKEWARM"},
		{60, "LUKEWARM"},
		{61, "WARM"},
		{75, "WARM"},
		{76, "HOT"},
		{90, "HOT"},
		{91, "ON_FIRE"},
		{100, "ON_FIRE"},
	}

	for _, tc := range cases {
		tier := ClassifyScore(tc.score)
		assert.Equal(t, tc.name, tier.Name, "score %d", tc.score)
	}
}

func TestClassifyScore_TotalAndMonotonic(t *testing.T) {
	rank := map[string]int{
		"FREEZING": 0, "COLD": 1, "LUKEWARM": 2, "WARM": 3, "HOT": 4, "ON_FIRE": 5,
	}

	prev := -1
	for score := 0; score <= 100; score++ {
		tier := ClassifyScore(score)
		r, known := rank[tier.Name]
		assert.True(t, known, "score %d mapped to unknown tier %q", score, tier.Name)
		assert.GreaterOrEqual(t, r, prev, "tier rank regressed at score %d", score)
		assert.NotEmpty(t, tier.Emoji)
		assert.NotEmpty(t, tier.Color)
		assert.NotEmpty(t, tier.Message)
		prev = r
	}
}

func TestNextTier(t *testing.T) {
	threshold, points := NextTier(55)
	assert.Equal(t, 60, threshold)
	assert.Equal(t, 5, points)

	threshold, points = NextTier(0)
	assert.Equal(t, 20, threshold)
	assert.Equal(t, 20, points)

	// Top band has no next tier.
	threshold, points = NextTier(95)
	assert.Equal(t, 100, threshold)
	assert.Equal(t, 0, points)

	threshold, points = NextTier(100)
	assert.Equal(t, 100, threshold)
	assert.Equal(t, 0, points)
}
