package types

const (
	TypeWebsocketPing  = "ping"
	TypeWebsocketPong  = "pong"
	TypeWebsocketChat  = "chat"
	TypeWebsocketError = "error"
)

type WebsocketRequest struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type WebsocketResponse struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type WebsocketChatPayload struct {
	Query string `json:"query"`
	PDFID string `json:"pdf_id"`
}

type WebsocketChatResponse struct {
	Response string `json:"response"`
}

type WebsocketErrorResponse struct {
	Message string `json:"message"`
}
