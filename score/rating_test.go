package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DenethorandEddie/Mahalle/schema"
)

func TestSummarizeRatingsEmpty(t *testing.T) {
	summary := SummarizeRatings(nil)

	assert.Equal(t, 0.0, summary.Average)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}, summary.Distribution)
	for _, category := range schema.RatingCategories {
		assert.Equal(t, 0.0, summary.CategoryAverages[category])
	}
}

func TestSummarizeRatings(t *testing.T) {
	comments := []schema.Comment{
		{Rating: 4.5},
		{Rating: 4},
		{Rating: 2.4},
		{Rating: 1},
	}

	summary := SummarizeRatings(comments)

	assert.InDelta(t, 2.975, summary.Average, 1e-9)
	assert.Equal(t, 4, summary.Count)
	assert.Equal(t, map[string]int{"1": 1, "2": 1, "3": 0, "4": 1, "5": 1}, summary.Distribution)
}

// The sum of all histogram buckets equals the contributing record count
// whenever no rating rounds outside 1..5.
func TestSummarizeRatingsHistogramTotal(t *testing.T) {
	comments := []schema.Comment{
		{Rating: 1}, {Rating: 1.4}, {Rating: 2.5}, {Rating: 3.3},
		{Rating: 4.49}, {Rating: 4.5}, {Rating: 5},
	}

	summary := SummarizeRatings(comments)

	total := 0
	for _, bucket := range summary.Distribution {
		total += bucket
	}
	assert.Equal(t, summary.Count, total)
}

func TestSummarizeRatingsDiscardsOutOfRange(t *testing.T) {
	comments := []schema.Comment{
		{Rating: 9},
		{Rating: 3},
	}

	summary := SummarizeRatings(comments)

	// the malformed rating still contributes to the mean but lands in no
	// bucket
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, 6.0, summary.Average)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 1, "4": 0, "5": 0}, summary.Distribution)
}

func TestSummarizeRatingsCategoryZeroExclusion(t *testing.T) {
	comments := []schema.Comment{
		{CategoryRatings: map[string]int{"guvenlik": 0}},
		{CategoryRatings: map[string]int{"guvenlik": 4}},
		{CategoryRatings: map[string]int{"guvenlik": 2}},
	}

	summary := SummarizeRatings(comments)

	assert.Equal(t, 3.0, summary.CategoryAverages["guvenlik"])
	assert.Equal(t, 0.0, summary.CategoryAverages["ulasim"])
	assert.Equal(t, 0, summary.Count)
}

func TestSummarizeRatingsIgnoresUnknownCategories(t *testing.T) {
	comments := []schema.Comment{
		{Rating: 5, CategoryRatings: map[string]int{"otopark": 5, "yesil": 3}},
	}

	summary := SummarizeRatings(comments)

	assert.Equal(t, 3.0, summary.CategoryAverages["yesil"])
	_, ok := summary.CategoryAverages["otopark"]
	assert.False(t, ok)
}
