package api

import (
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	errorInternalServer      = errorResponse{1000, "internal server error"}
	errorInvalidParameters   = errorResponse{1001, "invalid parameters"}
	errorUnknownTimeRange    = errorResponse{1002, "unknown time range"}
	errorCommentNotFound     = errorResponse{2000, "comment not found"}
	errorAnalyticsConflict   = errorResponse{2001, "analytics update conflict, try again"}
	errorUserNotFound        = errorResponse{2002, "user not found"}
	errorNotificationMissing = errorResponse{2003, "notification not found"}
)

// abortWithEncoding aborts the request with the given error response. Any
// underlying errors are logged but never returned to the client.
func abortWithEncoding(c *gin.Context, code int, obj errorResponse, errors ...error) {
	for _, err := range errors {
		log.WithError(err).WithField("code", obj.Code).Error("api error")
	}
	c.AbortWithStatusJSON(code, obj)
}
