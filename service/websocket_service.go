package service

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/docqa/pdfchat-be/types"
	"github.com/gorilla/websocket"
)

// WebSocketService serves the chat pipeline over a websocket connection so
// the UI can ask follow-up questions without re-posting. Each chat message is
// still an independent question; no conversation state is kept here.
type WebSocketService struct {
	chatService *ChatService
	upgrader    websocket.Upgrader
}

func NewWebSocketService(chatService *ChatService) *WebSocketService {
	return &WebSocketService{
		chatService: chatService,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
	}
}

func (s *WebSocketService) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024) // 512KB max message size
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))

		var req types.WebsocketRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketPing:
			s.write(conn, types.WebsocketResponse{Type: types.TypeWebsocketPong})
		case types.TypeWebsocketChat:
			s.handleChatMessage(r, conn, req.Payload)
		default:
			s.writeError(conn, "unknown message type")
		}
	}
}

func (s *WebSocketService) handleChatMessage(r *http.Request, conn *websocket.Conn, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		s.writeError(conn, "invalid payload")
		return
	}
	var chatPayload types.WebsocketChatPayload
	if err := json.Unmarshal(data, &chatPayload); err != nil {
		s.writeError(conn, "invalid payload")
		return
	}
	if chatPayload.Query == "" || chatPayload.PDFID == "" {
		s.writeError(conn, "missing query or pdf_id")
		return
	}

	reply, err := s.chatService.Ask(r.Context(), chatPayload.PDFID, chatPayload.Query)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			s.writeError(conn, "PDF not found")
			return
		}
		log.Printf("WebSocket chat error: %v", err)
		s.writeError(conn, "internal error")
		return
	}

	s.write(conn, types.WebsocketResponse{
		Type: types.TypeWebsocketChat,
		Payload: types.WebsocketChatResponse{
			Response: reply,
		},
	})
}

func (s *WebSocketService) write(conn *websocket.Conn, resp types.WebsocketResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("WebSocket write error: %v", err)
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	s.write(conn, types.WebsocketResponse{
		Type: types.TypeWebsocketError,
		Payload: types.WebsocketErrorResponse{
			Message: message,
		},
	})
}
