package handler

import (
	"net/http"

	"github.com/docqa/pdfchat-be/repository"
	"github.com/docqa/pdfchat-be/types"
	"github.com/gin-gonic/gin"
)

// PDFHandler resolves a record id to the stored file's public URL; the
// viewer fetches the bytes from storage directly.
type PDFHandler struct {
	uploadRepo repository.UploadRepo
}

func NewPDFHandler(uploadRepo repository.UploadRepo) *PDFHandler {
	return &PDFHandler{
		uploadRepo: uploadRepo,
	}
}

func (h *PDFHandler) HandleGetPDF(c *gin.Context) {
	pdfID := c.Param("pdfId")

	record, err := h.uploadRepo.GetUpload(c.Request.Context(), pdfID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.PDFResponse{
		URL: record.URL,
	})
}
