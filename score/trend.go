package score

import (
	"math"

	"github.com/DenethorandEddie/Mahalle/schema"
)

// Weights of the composite trend score. They sum to 1.0.
const (
	weightCommentGrowth = 0.4
	weightRatingGrowth  = 0.2
	weightActivity      = 0.2
	weightViews         = 0.1
	weightFavorites     = 0.1
)

// Classification thresholds of the composite score.
const (
	trendUpThreshold     = 1.5
	trendStableThreshold = 0.8
)

// GrowthRate compares one period's activity against the prior period.
// A prior period of zero encodes "any activity where there was none" as
// a fixed 2x growth signal and "no activity either period" as neutral.
func GrowthRate(current, prior float64) float64 {
	if prior == 0 {
		if current > 0 {
			return 2
		}
		return 1
	}
	return current / prior
}

// TrendScore combines short-term growth ratios with log-damped absolute
// activity.
// The logarithms keep high-traffic locations from dominating purely on
// scale.
func TrendScore(commentGrowthRate, ratingGrowthRate float64, currentCommentCount, viewCount, favoriteCount int64) float64 {
	activityScore := logScale(float64(currentCommentCount))
	viewScore := logScale(float64(viewCount))
	favoriteScore := logScale(float64(favoriteCount))

	return commentGrowthRate*weightCommentGrowth +
		ratingGrowthRate*weightRatingGrowth +
		activityScore*weightActivity +
		viewScore*weightViews +
		favoriteScore*weightFavorites
}

func logScale(value float64) float64 {
	if value > 0 {
		return 1 + math.Log10(value)
	}
	return 1
}

// ClassifyTrend maps a composite score to its discrete label.
func ClassifyTrend(score float64) schema.Trend {
	switch {
	case score >= trendUpThreshold:
		return schema.TrendUp
	case score >= trendStableThreshold:
		return schema.TrendStable
	default:
		return schema.TrendDown
	}
}

// Round2 rounds a score to two decimal places for reporting.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
