package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/docqa/pdfchat-be/types"
	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto status codes: validation → 400,
// unknown id → 404, everything else → a generic 500 with no internals leaked.
func respondError(c *gin.Context, err error) {
	var validationErr *types.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: validationErr.Message})
	case errors.Is(err, types.ErrNotFound):
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "PDF not found"})
	default:
		log.Printf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Internal Server Error"})
	}
}
