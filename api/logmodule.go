package api

import (
	"net/http/httputil"

	"github.com/gin-gonic/gin"
)

// DumpRequest dumps the full incoming request when trace mode is on.
func (s *Server) DumpRequest(c *gin.Context) {
	if s.traceMode {
		dump, err := httputil.DumpRequest(c.Request, true)
		if err != nil {
			log.WithError(err).Warn("fail to dump request")
		} else {
			log.WithField("request", string(dump)).Trace("incoming request")
		}
	}
	c.Next()
}
