package score

import (
	"math"
	"strconv"

	"github.com/DenethorandEddie/Mahalle/schema"
)

// SummarizeRatings folds the complete comment set of one location into
// its rating summary. An empty set yields a zeroed summary, never an
// error.
//
// The histogram buckets each overall rating by rounding half up to the
// nearest integer; a rounded value outside 1..5 is discarded. Category
// averages skip zero values since 0 marks an unrated category.
func SummarizeRatings(comments []schema.Comment) schema.RatingData {
	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	categorySums := make(map[string]float64, len(schema.RatingCategories))
	categoryCounts := make(map[string]int, len(schema.RatingCategories))

	totalRating := float64(0)
	count := 0

	for _, comment := range comments {
		if comment.Rating > 0 {
			totalRating += comment.Rating
			count++

			rounded := int(math.Round(comment.Rating))
			if rounded >= 1 && rounded <= 5 {
				distribution[strconv.Itoa(rounded)]++
			}
		}

		for _, category := range schema.RatingCategories {
			if value := comment.CategoryRatings[category]; value > 0 {
				categorySums[category] += float64(value)
				categoryCounts[category]++
			}
		}
	}

	categoryAverages := make(map[string]float64, len(schema.RatingCategories))
	for _, category := range schema.RatingCategories {
		if categoryCounts[category] > 0 {
			categoryAverages[category] = categorySums[category] / float64(categoryCounts[category])
		} else {
			categoryAverages[category] = 0
		}
	}

	average := float64(0)
	if count > 0 {
		average = totalRating / float64(count)
	}

	return schema.RatingData{
		Average:          average,
		Count:            count,
		Distribution:     distribution,
		CategoryAverages: categoryAverages,
	}
}
