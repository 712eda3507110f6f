package handler

import (
	"net/http"
	"strings"

	"homewise/internal/model"
	"homewise/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles conversational queries
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ChatResponse{
			Success: false,
			Error:   "Invalid request: " + err.Error(),
		})
		return
	}

	query := strings.TrimSpace(req.Text())
	if query == "" {
		c.JSON(http.StatusBadRequest, model.ChatResponse{
			Success: false,
			Error:   "Query must not be empty",
		})
		return
	}

	resp := h.chatService.Answer(c.Request.Context(), req.SessionID, query)
	c.JSON(http.StatusOK, resp)
}

// GetContext handles GET /api/v1/chat/context
func (h *ChatHandler) GetContext(c *gin.Context) {
	sessionID := c.Query("session_id")
	filters := h.chatService.Context(sessionID)
	c.JSON(http.StatusOK, gin.H{"success": true, "context": filters})
}

// ResetContext handles POST /api/v1/chat/reset
func (h *ChatHandler) ResetContext(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	_ = c.ShouldBindJSON(&req)

	h.chatService.ResetContext(req.SessionID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
