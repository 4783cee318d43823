package handler

import (
	"net/http"

	"github.com/docqa/pdfchat-be/repository"
	"github.com/docqa/pdfchat-be/types"
	"github.com/gin-gonic/gin"
)

// MetadataHandler persists upload records for files the client already
// pushed to storage itself.
type MetadataHandler struct {
	uploadRepo repository.UploadRepo
}

func NewMetadataHandler(uploadRepo repository.UploadRepo) *MetadataHandler {
	return &MetadataHandler{
		uploadRepo: uploadRepo,
	}
}

func (h *MetadataHandler) HandleSaveMetadata(c *gin.Context) {
	var req types.SaveMetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.URL == "" || req.UserID == "" || req.FileName == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error: "Missing required fields: url, userId, fileName",
		})
		return
	}

	record := &types.UploadRecord{
		URL:      req.URL,
		UserID:   req.UserID,
		Filename: req.FileName,
	}
	id, err := h.uploadRepo.CreateUpload(c.Request.Context(), record)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.SaveMetadataResponse{
		Success:    true,
		DocumentID: id,
		Message:    "Metadata saved successfully",
	})
}
