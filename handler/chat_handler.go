package handler

import (
	"net/http"

	"github.com/docqa/pdfchat-be/service"
	"github.com/docqa/pdfchat-be/types"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService *service.ChatService
}

func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.Query == "" || req.PDFID == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing query or pdfId"})
		return
	}

	reply, err := h.chatService.Ask(c.Request.Context(), req.PDFID, req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ChatResponse{
		Response: reply,
	})
}
