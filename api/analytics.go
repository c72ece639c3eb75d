package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/store"
)

type viewEventParams struct {
	SessionID  string `json:"session_id"`
	DeviceType string `json:"device_type"`
	Duration   int64  `json:"duration"`
}

// trackEvent records a page view of a mahalle. Favorite and comment
// events are tracked by their own endpoints.
func (s *Server) trackEvent(c *gin.Context) {
	il, ilce, mahalle := locationFromPath(c)
	location := schema.LocationData{Il: il, Ilce: ilce, Mahalle: mahalle}

	var params viewEventParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.SessionID == "" {
		params.SessionID = uuid.NewString()
	}
	if params.DeviceType == "" {
		params.DeviceType = "unknown"
	}

	event := schema.AnalyticsEvent{
		IsView:     true,
		SessionID:  params.SessionID,
		DeviceType: params.DeviceType,
		Duration:   params.Duration,
	}

	if err := s.mahalleStore.UpdateMahalleAnalytics(location, event); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":     "OK",
		"session_id": params.SessionID,
	})
}

// getAnalytics returns the analytics record of a mahalle. A mahalle
// that was never visited reports a zeroed record instead of an error.
func (s *Server) getAnalytics(c *gin.Context) {
	il, ilce, mahalle := locationFromPath(c)
	location := schema.LocationData{Il: il, Ilce: ilce, Mahalle: mahalle}

	record, err := s.mahalleStore.GetMahalleAnalytics(location)
	if err == store.ErrAnalyticsNotFound {
		record = &schema.MahalleAnalytics{LocationData: location}
	} else if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
