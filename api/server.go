package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/DenethorandEddie/Mahalle/store"
)

var log = logrus.WithField("module", "api")

// Server serves the neighborhood review API.
type Server struct {
	router *gin.Engine

	mahalleStore store.MahalleStore

	httpServer *http.Server

	traceMode bool
}

// NewServer returns a server over the given store.
func NewServer(mahalleStore store.MahalleStore, traceMode bool) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	return &Server{
		router:       engine,
		mahalleStore: mahalleStore,
		traceMode:    traceMode,
	}
}

// Run starts to serve the api endpoints.
func (s *Server) Run(addr string) error {
	s.setupRouter()

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	s.httpServer = srv

	return srv.ListenAndServe()
}

// Shutdown to shutdown the api server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setupRouter() {
	s.router.Use(s.DumpRequest)

	api := s.router.Group("/api")

	mahalle := api.Group("/mahalleler/:il/:ilce/:mahalle")
	{
		mahalle.GET("/comments", s.listComments)
		mahalle.GET("/rating", s.getRating)
		mahalle.GET("/analytics", s.getAnalytics)
		mahalle.POST("/events", s.trackEvent)
	}

	comments := api.Group("/comments")
	{
		comments.POST("", s.addComment)
		comments.DELETE("/:commentID", s.deleteComment)
		comments.POST("/:commentID/replies", s.addReply)
		comments.POST("/:commentID/votes", s.voteComment)
	}

	users := api.Group("/users/:userID")
	{
		users.GET("", s.getUser)
		users.GET("/comments", s.listUserComments)
		users.POST("/favorites", s.addFavorite)
		users.DELETE("/favorites", s.removeFavorite)
		users.POST("/sessions", s.touchSession)
		users.GET("/notifications", s.listNotifications)
	}

	api.PATCH("/notifications/:notificationID", s.markNotificationRead)

	api.GET("/trending", s.getTrending)
	api.GET("/dashboard", s.getDashboardStats)
	api.POST("/feedback", s.createFeedback)

	s.router.GET("/healthz", s.healthz)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"time":   time.Now().UTC(),
	})
}

// locationFromPath resolves the location triple of a mahalle route.
func locationFromPath(c *gin.Context) (string, string, string) {
	return c.Param("il"), c.Param("ilce"), c.Param("mahalle")
}
