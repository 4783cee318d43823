package types

type SaveMetadataRequest struct {
	URL      string `json:"url"`
	UserID   string `json:"userId"`
	FileName string `json:"fileName"`
}

type ExtractRequest struct {
	PDFID string `json:"pdfId"`
}

type ChatRequest struct {
	Query string `json:"query"`
	PDFID string `json:"pdfId"`
}
