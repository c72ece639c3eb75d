package stats

import (
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/stats/mocks"
)

func TestGetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	source := mocks.NewMockDashboardDataSource(ctrl)
	source.EXPECT().GetCommentWindowStats(schema.LocationData{}, weekAgo, now).
		Return(schema.CommentWindowStats{Count: 10, RatedCount: 8, RatingSum: 34.4}, nil)
	source.EXPECT().CountComments().Return(int64(240), nil)
	source.EXPECT().CountActiveUsersSince(weekAgo).Return(int64(57), nil)
	source.EXPECT().CountVisitLogs().Return(int64(12345), nil)
	source.EXPECT().ListUserFavoriteCounts().Return([]int64{3, 0, 2, 7}, nil)

	dashboard, err := GetDashboardStats(source, TimeRangeWeek, now)
	assert.NoError(t, err)

	// the windowed average counts rated comments only
	assert.Equal(t, "4.3", dashboard.AverageRating)
	assert.Equal(t, int64(12345), dashboard.TotalViews)
	assert.Equal(t, int64(57), dashboard.ActiveUsers)
	assert.Equal(t, int64(240), dashboard.TotalComments)
	assert.Equal(t, int64(12), dashboard.FavoriteCount)
	assert.Equal(t, 0, dashboard.TrendingCount)
}

func TestGetDashboardStatsEmptyWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	source := mocks.NewMockDashboardDataSource(ctrl)
	source.EXPECT().GetCommentWindowStats(schema.LocationData{}, now.AddDate(0, 0, -1), now).
		Return(schema.CommentWindowStats{}, nil)
	source.EXPECT().CountComments().Return(int64(0), nil)
	source.EXPECT().CountActiveUsersSince(gomock.Any()).Return(int64(0), nil)
	source.EXPECT().CountVisitLogs().Return(int64(0), nil)
	source.EXPECT().ListUserFavoriteCounts().Return(nil, nil)

	dashboard, err := GetDashboardStats(source, TimeRangeDay, now)
	assert.NoError(t, err)
	assert.Equal(t, "0.0", dashboard.AverageRating)
	assert.Equal(t, int64(0), dashboard.FavoriteCount)
}

func TestGetDashboardStatsWindows(t *testing.T) {
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	cases := map[TimeRange]time.Time{
		TimeRangeDay:   now.AddDate(0, 0, -1),
		TimeRangeWeek:  now.AddDate(0, 0, -7),
		TimeRangeMonth: now.AddDate(0, -1, 0),
		TimeRangeYear:  now.AddDate(-1, 0, 0),
	}

	for timeRange, expected := range cases {
		start, err := windowStart(timeRange, now)
		assert.NoError(t, err)
		assert.Equal(t, expected, start)
	}

	_, err := windowStart(TimeRange("quarter"), now)
	assert.Equal(t, ErrUnknownTimeRange, err)
}

// Any data-access failure aborts the whole summary; there is no partial
// dashboard.
func TestGetDashboardStatsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	source := mocks.NewMockDashboardDataSource(ctrl)
	source.EXPECT().GetCommentWindowStats(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(schema.CommentWindowStats{}, nil)
	source.EXPECT().CountComments().Return(int64(0), fmt.Errorf("store unreachable"))

	dashboard, err := GetDashboardStats(source, TimeRangeMonth, now)
	assert.Error(t, err)
	assert.Nil(t, dashboard)
}
