package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicleagent/internal/model"
	"vehicleagent/internal/service"
)

// ChatHandler handles agent-facing HTTP requests
type ChatHandler struct {
	dispatcher *service.Dispatcher
	agentName  string
}

// NewChatHandler creates a new chat handler
func NewChatHandler(dispatcher *service.Dispatcher, agentName string) *ChatHandler {
	return &ChatHandler{
		dispatcher: dispatcher,
		agentName:  agentName,
	}
}

// Chat handles POST /chat. Degraded results (backend down, unclear intent)
// still answer 200 with the failure described in the text field; only a
// renderer fault produces an error status.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// When an event is present, the query is ignored.
	query := req.Query
	if req.Event != nil {
		query = ""
	}

	response, err := h.dispatcher.Process(c.Request.Context(), query, req.SessionID, req.Event)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Agent processing failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Health handles GET /health
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"agent":  h.agentName,
	})
}
