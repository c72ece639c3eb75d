package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DenethorandEddie/Mahalle/consts"
	"github.com/DenethorandEddie/Mahalle/stats"
)

// parseTrendingLimit resolves the optional limit query. An absent value
// falls back to the default ranking size; a malformed or non-positive
// one is an error.
func parseTrendingLimit(v string) (int, error) {
	if v == "" {
		return consts.TrendingDefaultLimit, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("invalid limit: %d", n)
	}
	return n, nil
}

func (s *Server) getTrending(c *gin.Context) {
	limit, err := parseTrendingLimit(c.Query("limit"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	trending := stats.GetTrendingMahalleler(s.mahalleStore, time.Now().UTC(), limit)

	c.JSON(http.StatusOK, gin.H{"trending": trending})
}
