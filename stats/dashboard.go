package stats

import (
	"fmt"
	"time"

	"github.com/DenethorandEddie/Mahalle/schema"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/dashboard.go -package=mocks

var ErrUnknownTimeRange = fmt.Errorf("unknown time range")

type TimeRange string

const (
	TimeRangeDay   TimeRange = "day"
	TimeRangeWeek  TimeRange = "week"
	TimeRangeMonth TimeRange = "month"
	TimeRangeYear  TimeRange = "year"
)

// DashboardDataSource is the data access the dashboard summary needs.
// A zero-value location passed to GetCommentWindowStats means all
// locations.
type DashboardDataSource interface {
	GetCommentWindowStats(location schema.LocationData, start, end time.Time) (schema.CommentWindowStats, error)
	CountComments() (int64, error)
	CountActiveUsersSince(t time.Time) (int64, error)
	CountVisitLogs() (int64, error)
	ListUserFavoriteCounts() ([]int64, error)
}

// DashboardStats are the admin dashboard headline figures. TotalViews
// and TotalComments are all-time totals even though the summary takes a
// time range; only the average rating and active-user figures are
// windowed.
type DashboardStats struct {
	TotalViews    int64  `json:"total_views"`
	ActiveUsers   int64  `json:"active_users"`
	AverageRating string `json:"average_rating"`
	TotalComments int64  `json:"total_comments"`
	FavoriteCount int64  `json:"favorite_count"`
	TrendingCount int    `json:"trending_count"`
}

// GetDashboardStats folds the raw records into the dashboard headline
// figures for the window ending at now. Unlike the trending ranking,
// any data-access failure aborts the whole summary.
func GetDashboardStats(source DashboardDataSource, timeRange TimeRange, now time.Time) (*DashboardStats, error) {
	start, err := windowStart(timeRange, now)
	if err != nil {
		return nil, err
	}

	windowStats, err := source.GetCommentWindowStats(schema.LocationData{}, start, now)
	if err != nil {
		return nil, err
	}

	totalComments, err := source.CountComments()
	if err != nil {
		return nil, err
	}

	activeUsers, err := source.CountActiveUsersSince(start)
	if err != nil {
		return nil, err
	}

	totalViews, err := source.CountVisitLogs()
	if err != nil {
		return nil, err
	}

	favoriteCounts, err := source.ListUserFavoriteCounts()
	if err != nil {
		return nil, err
	}
	favoriteCount := int64(0)
	for _, count := range favoriteCounts {
		favoriteCount += count
	}

	averageRating := "0.0"
	if windowStats.RatedCount > 0 {
		averageRating = fmt.Sprintf("%.1f", windowStats.RatingSum/float64(windowStats.RatedCount))
	}

	return &DashboardStats{
		TotalViews:    totalViews,
		ActiveUsers:   activeUsers,
		AverageRating: averageRating,
		TotalComments: totalComments,
		FavoriteCount: favoriteCount,
		TrendingCount: 0, // computed separately by the trending ranking
	}, nil
}

func windowStart(timeRange TimeRange, now time.Time) (time.Time, error) {
	switch timeRange {
	case TimeRangeDay:
		return now.AddDate(0, 0, -1), nil
	case TimeRangeWeek:
		return now.AddDate(0, 0, -7), nil
	case TimeRangeMonth:
		return now.AddDate(0, -1, 0), nil
	case TimeRangeYear:
		return now.AddDate(-1, 0, 0), nil
	default:
		return time.Time{}, ErrUnknownTimeRange
	}
}
