package handler

import (
	"net/http"

	"github.com/docqa/pdfchat-be/service"
	"github.com/docqa/pdfchat-be/types"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	fileService *service.FileService
}

func NewUploadHandler(fileService *service.FileService) *UploadHandler {
	return &UploadHandler{
		fileService: fileService,
	}
}

func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid file"})
		return
	}
	userID := c.PostForm("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Missing userId"})
		return
	}

	record, err := h.fileService.UploadFile(c.Request.Context(), userID, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		Success:    true,
		DocumentID: record.ID,
		URL:        record.URL,
	})
}
