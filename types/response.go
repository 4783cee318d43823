package types

type ErrorResponse struct {
	Error string `json:"error"`
}

type SaveMetadataResponse struct {
	Success    bool   `json:"success"`
	DocumentID string `json:"documentId"`
	Message    string `json:"message,omitempty"`
}

type ExtractResponse struct {
	Success    bool `json:"success"`
	TextLength int  `json:"textLength"`
}

type PDFResponse struct {
	URL string `json:"url"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

type UploadResponse struct {
	Success    bool   `json:"success"`
	DocumentID string `json:"documentId"`
	URL        string `json:"url"`
}
