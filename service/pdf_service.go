package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFService turns PDF bytes into plain text. No OCR fallback: a scanned,
// image-only document yields empty output and that is not an error.
type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// ExtractText walks pages in document order, joining pages with newlines.
// Returns an error only when the bytes are not a parseable PDF.
func (s *PDFService) ExtractText(data []byte) (text string, err error) {
	// the parser panics on some malformed content streams
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var pages []string
	totalPages := reader.NumPage()
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := s.pageText(page)
		if err != nil {
			return "", fmt.Errorf("failed to extract page %d: %w", pageNum, err)
		}
		if pageText == "" {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, "\n"), nil
}

// pageText uses the plain-text reader so glyphs come back as whole words,
// not one text item per character.
func (s *PDFService) pageText(page pdf.Page) (string, error) {
	text, err := page.GetPlainText(nil)
	if err != nil {
		return "", err
	}
	return s.cleanText(text), nil
}

// cleanReplacements run in order: control characters first, then the space
// collapse, so the same input always cleans to the same output.
var cleanReplacements = []struct{ old, new string }{
	{"\u0000", ""},  // Null character
	{"\ufffd", ""},  // Unicode replacement character
	{"\u001b", ""},  // Escape character
	{"\r", ""},      // Carriage return
	{"\f", "\n"},    // Form feed to newline
	{"  ", " "},     // Multiple spaces to single space
}

func (s *PDFService) cleanText(text string) string {
	cleaned := text
	for _, r := range cleanReplacements {
		cleaned = strings.ReplaceAll(cleaned, r.old, r.new)
	}
	return strings.TrimSpace(cleaned)
}
