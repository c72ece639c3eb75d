package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/score"
	"github.com/DenethorandEddie/Mahalle/utils"
)

type categoryRating struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// getRating summarizes the ratings of one mahalle from its comments.
func (s *Server) getRating(c *gin.Context) {
	il, ilce, mahalle := locationFromPath(c)
	lang := c.DefaultQuery("lang", "tr")

	comments, err := s.mahalleStore.ListCommentsByLocation(schema.LocationData{
		Il:      il,
		Ilce:    ilce,
		Mahalle: mahalle,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	rating := score.SummarizeRatings(comments)

	categories := make([]categoryRating, 0, len(schema.RatingCategories))
	for _, id := range schema.RatingCategories {
		name, err := utils.LocalizeCategory(lang, id)
		if err != nil {
			log.WithError(err).WithField("category", id).Warn("localize category name")
			name = id
		}
		categories = append(categories, categoryRating{
			ID:      id,
			Name:    name,
			Average: rating.CategoryAverages[id],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"average":      rating.Average,
		"count":        rating.Count,
		"distribution": rating.Distribution,
		"categories":   categories,
	})
}
