package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/store"
)

func (s *Server) getUser(c *gin.Context) {
	user, err := s.mahalleStore.GetUser(c.Param("userID"))
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) addFavorite(c *gin.Context) {
	s.updateFavorite(c, true)
}

func (s *Server) removeFavorite(c *gin.Context) {
	s.updateFavorite(c, false)
}

func (s *Server) updateFavorite(c *gin.Context, favorite bool) {
	userID := c.Param("userID")

	var params struct {
		Location schema.LocationData `json:"location"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if !params.Location.IsComplete() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("incomplete location: %+v", params.Location))
		return
	}

	var err error
	if favorite {
		err = s.mahalleStore.AddFavoriteMahalle(userID, params.Location)
	} else {
		err = s.mahalleStore.RemoveFavoriteMahalle(userID, params.Location)
	}
	if err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	event := schema.AnalyticsEvent{IsFavorite: &favorite}
	if err := s.mahalleStore.UpdateMahalleAnalytics(params.Location, event); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// touchSession refreshes a user's last-login timestamp. The dashboard
// counts active users from it.
func (s *Server) touchSession(c *gin.Context) {
	if err := s.mahalleStore.TouchLastLogin(c.Param("userID")); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) listNotifications(c *gin.Context) {
	notifications, err := s.mahalleStore.ListUnreadNotifications(c.Param("userID"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (s *Server) markNotificationRead(c *gin.Context) {
	notificationID, err := primitive.ObjectIDFromHex(c.Param("notificationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mahalleStore.MarkNotificationRead(notificationID); err != nil {
		if err == store.ErrNotificationNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorNotificationMissing, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
