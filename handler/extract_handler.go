package handler

import (
	"net/http"

	"github.com/docqa/pdfchat-be/service"
	"github.com/docqa/pdfchat-be/types"
	"github.com/gin-gonic/gin"
)

type ExtractHandler struct {
	extractService *service.ExtractService
}

func NewExtractHandler(extractService *service.ExtractService) *ExtractHandler {
	return &ExtractHandler{
		extractService: extractService,
	}
}

func (h *ExtractHandler) HandleExtract(c *gin.Context) {
	var req types.ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.PDFID == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing PDF ID"})
		return
	}

	textLength, err := h.extractService.Extract(c.Request.Context(), req.PDFID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ExtractResponse{
		Success:    true,
		TextLength: textLength,
	})
}
