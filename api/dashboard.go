package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DenethorandEddie/Mahalle/stats"
)

func (s *Server) getDashboardStats(c *gin.Context) {
	timeRange := stats.TimeRange(c.DefaultQuery("range", string(stats.TimeRangeWeek)))

	dashboard, err := stats.GetDashboardStats(s.mahalleStore, timeRange, time.Now().UTC())
	if err != nil {
		if err == stats.ErrUnknownTimeRange {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownTimeRange, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
