package api

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DenethorandEddie/Mahalle/consts"
	"github.com/DenethorandEddie/Mahalle/schema"
	"github.com/DenethorandEddie/Mahalle/store"
)

type commentParams struct {
	Text            string              `json:"text" binding:"required"`
	UserID          string              `json:"user_id" binding:"required"`
	DisplayName     string              `json:"display_name"`
	PhotoURL        string              `json:"photo_url"`
	Rating          float64             `json:"rating"`
	CategoryRatings map[string]int      `json:"category_ratings"`
	YearsLived      string              `json:"years_lived"`
	Location        schema.LocationData `json:"location"`
}

func (s *Server) addComment(c *gin.Context) {
	var params commentParams
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if !params.Location.IsComplete() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("incomplete location: %+v", params.Location))
		return
	}

	displayName := params.DisplayName
	if displayName == "" {
		displayName = fmt.Sprintf("Anonim%04d", rand.Intn(10000))
	}

	comment := schema.Comment{
		Text:            params.Text,
		UserID:          params.UserID,
		DisplayName:     displayName,
		PhotoURL:        params.PhotoURL,
		Rating:          params.Rating,
		CategoryRatings: params.CategoryRatings,
		YearsLived:      params.YearsLived,
		LocationData:    params.Location,
		CreatedAt:       time.Now().UTC(),
	}

	commentID, err := s.mahalleStore.AddComment(comment)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	if err := s.mahalleStore.UpdateMahalleAnalytics(params.Location, buildCommentEvent(params.Rating)); err != nil {
		if err == store.ErrAnalyticsConflict {
			abortWithEncoding(c, http.StatusConflict, errorAnalyticsConflict, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": commentID})
}

// buildCommentEvent derives the analytics event of a freshly posted comment.
// A zero rating marks a comment without ratings and carries no sentiment.
func buildCommentEvent(rating float64) schema.AnalyticsEvent {
	return schema.AnalyticsEvent{
		IsComment:         true,
		Rating:            rating,
		IsPositiveComment: rating >= consts.PositiveRatingThreshold,
		IsNegativeComment: rating > 0 && rating <= consts.NegativeRatingThreshold,
	}
}

func (s *Server) listComments(c *gin.Context) {
	il, ilce, mahalle := locationFromPath(c)

	comments, err := s.mahalleStore.ListCommentsByLocation(schema.LocationData{
		Il:      il,
		Ilce:    ilce,
		Mahalle: mahalle,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (s *Server) listUserComments(c *gin.Context) {
	comments, err := s.mahalleStore.ListCommentsByUser(c.Param("userID"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (s *Server) deleteComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if err := s.mahalleStore.DeleteComment(commentID); err != nil {
		if err == store.ErrCommentNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorCommentNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) addReply(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		Text        string `json:"text" binding:"required"`
		UserID      string `json:"user_id" binding:"required"`
		DisplayName string `json:"display_name"`
		PhotoURL    string `json:"photo_url"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	reply := schema.Reply{
		Text:        params.Text,
		UserID:      params.UserID,
		DisplayName: params.DisplayName,
		PhotoURL:    params.PhotoURL,
	}

	replyID, err := s.mahalleStore.AddReply(commentID, reply)
	if err != nil {
		if err == store.ErrCommentNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorCommentNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": replyID})
}

func (s *Server) voteComment(c *gin.Context) {
	commentID, err := primitive.ObjectIDFromHex(c.Param("commentID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var params struct {
		UserID string `json:"user_id" binding:"required"`
		Vote   int    `json:"vote"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Vote < -1 || params.Vote > 1 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("invalid vote value: %d", params.Vote))
		return
	}

	votes, totalScore, err := s.mahalleStore.VoteComment(commentID, params.UserID, params.Vote)
	if err != nil {
		if err == store.ErrCommentNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorCommentNotFound, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"votes":       votes,
		"total_score": totalScore,
	})
}
