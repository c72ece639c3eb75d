package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DenethorandEddie/Mahalle/schema"
)

func (s *Server) createFeedback(c *gin.Context) {
	var params struct {
		UserID  string `json:"user_id"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	id, err := s.mahalleStore.CreateFeedback(schema.Feedback{
		UserID:  params.UserID,
		Email:   params.Email,
		Subject: params.Subject,
		Message: params.Message,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}
