package stats

import (
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/DenethorandEddie/Mahalle/consts"
	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/score"
)

//go:generate mockgen -source=trend.go -destination=mocks/trend.go -package=mocks

// TrendDataSource is the data access the trending ranking needs. The
// mongo store implements it; tests substitute a mock.
type TrendDataSource interface {
	ListMahalleAnalytics() ([]schema.MahalleAnalytics, error)
	GetCommentWindowStats(location schema.LocationData, start, end time.Time) (schema.CommentWindowStats, error)
}

// GetTrendingMahalleler ranks every known neighborhood by its trend
// score, computed from the current calendar month's activity against
// the month before, and truncates to limit entries.
//
// A location whose window stats cannot be fetched is skipped; the rest
// of the ranking still goes through. When the candidate enumeration
// itself fails the ranking is empty rather than an error.
func GetTrendingMahalleler(source TrendDataSource, now time.Time, limit int) []schema.TrendingMahalle {
	if limit <= 0 {
		limit = consts.TrendingDefaultLimit
	}

	records, err := source.ListMahalleAnalytics()
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": "stats",
			"error":  err,
		}).Error("fail to list analytics records for trending")
		return []schema.TrendingMahalle{}
	}

	oneMonthAgo := now.AddDate(0, -1, 0)
	twoMonthsAgo := now.AddDate(0, -2, 0)

	results := make([]schema.TrendingMahalle, 0, len(records))
	for _, record := range records {
		current, err := source.GetCommentWindowStats(record.LocationData, oneMonthAgo, now)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":   "stats",
				"location": record.LocationData.Key(),
				"error":    err,
			}).Warn("skip location in trending")
			continue
		}
		prior, err := source.GetCommentWindowStats(record.LocationData, twoMonthsAgo, oneMonthAgo)
		if err != nil {
			log.WithFields(log.Fields{
				"prefix":   "stats",
				"location": record.LocationData.Key(),
				"error":    err,
			}).Warn("skip location in trending")
			continue
		}

		commentGrowthRate := score.GrowthRate(float64(current.Count), float64(prior.Count))
		ratingGrowthRate := score.GrowthRate(windowAverage(current), windowAverage(prior))

		trendScore := score.TrendScore(commentGrowthRate, ratingGrowthRate, current.Count, record.Views, record.FavoriteCount)

		lastUpdated := record.LastUpdated
		if lastUpdated.IsZero() {
			lastUpdated = now
		}

		results = append(results, schema.TrendingMahalle{
			LocationData:  record.LocationData,
			Score:         score.Round2(trendScore),
			PreviousScore: record.PreviousScore,
			Trend:         score.ClassifyTrend(trendScore),
			LastUpdated:   lastUpdated,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}

	return results
}

// windowAverage is the mean rating of a window counting unrated
// comments as zero, which is how the growth comparison has always read
// it.
func windowAverage(stats schema.CommentWindowStats) float64 {
	if stats.Count == 0 {
		return 0
	}
	return stats.RatingSum / float64(stats.Count)
}
