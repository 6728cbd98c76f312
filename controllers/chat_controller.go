package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"lab-dashboard-backend/models"
	"lab-dashboard-backend/services"
)

// ChatController serves the assistant endpoint. When an AI key is configured
// it proxies the conversation to the completion API and falls back to rule
// based replies on any error; without a key it always uses the rules.
type ChatController struct {
	assistantService *services.AssistantService
	aiService        *services.AIService
	simulatedLatency time.Duration
	logger           zerolog.Logger
}

func NewChatController(assistant *services.AssistantService, ai *services.AIService, simulatedLatency time.Duration, logger zerolog.Logger) *ChatController {
	return &ChatController{
		assistantService: assistant,
		aiService:        ai,
		simulatedLatency: simulatedLatency,
		logger:           logger,
	}
}

// HandleChat processes a chat conversation and returns the assistant reply.
func (cc *ChatController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	lastMessage := req.LastUserMessage()

	// Connectivity probe used by the dashboard.
	if lastMessage == "test" {
		c.JSON(http.StatusOK, models.ChatResponse{
			ID:      "test-" + uuid.NewString(),
			Role:    "assistant",
			Content: "This is a test response from the AI assistant.",
		})
		return
	}

	if cc.simulatedLatency > 0 {
		time.Sleep(cc.simulatedLatency)
	}

	if cc.aiService.Configured() {
		reply, err := cc.aiService.GenerateChatResponse(c.Request.Context(), req.Messages)
		if err == nil {
			c.JSON(http.StatusOK, models.ChatResponse{
				ID:       "assistant-" + uuid.NewString(),
				Role:     "assistant",
				Content:  reply,
				Metadata: cc.assistantService.MetadataForAIResponse(reply, lastMessage),
			})
			return
		}
		cc.logger.Warn().Err(err).Msg("AI request failed, using rule-based reply")
	}

	c.JSON(http.StatusOK, cc.assistantService.Respond(lastMessage))
}

// GetConfig reports whether the AI integration is active so the dashboard
// can label its chat panel.
func (cc *ChatController) GetConfig(c *gin.Context) {
	configured := cc.aiService.Configured()
	message := "Using rule-based assistant responses"
	if configured {
		message = "AI assistant is configured"
	}
	c.JSON(http.StatusOK, gin.H{
		"configured": configured,
		"message":    message,
	})
}
