package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{assistantService: assistantService}
}

// ChatHandler relays one user message to the AI assistant.
// POST /api/ai/chat {"message": "..."} -> {"response": "..."}
// Upstream failures surface as generic messages; raw provider errors stay in
// the server logs.
func (a *AssistantController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := a.assistantService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		case errors.Is(err, utils.ErrAssistantUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI assistant is temporarily unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "AI assistant error",
				"details": "failed to get a response from the language model",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": reply})
}
