package dto

import (
	"time"

	"github.com/mnjscf/team_ops_app/internal/core/domain"
)

// SendMessageRequest appends one message to the shared channel.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatMessageResponse is the outward representation of a chat message.
type ChatMessageResponse struct {
	MessageID string    `json:"messageID"`
	UserID    string    `json:"userID"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ToChatMessageResponse converts a domain.ChatMessage to ChatMessageResponse DTO.
func ToChatMessageResponse(m domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		MessageID: m.MessageID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

// ListChatMessagesResponse wraps the bounded channel history in append order.
type ListChatMessagesResponse struct {
	Messages []ChatMessageResponse `json:"messages"`
}

// ToListChatMessagesResponse converts a slice of domain.ChatMessage to ListChatMessagesResponse DTO.
func ToListChatMessagesResponse(messages []domain.ChatMessage) ListChatMessagesResponse {
	responses := make([]ChatMessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = ToChatMessageResponse(m)
	}
	return ListChatMessagesResponse{Messages: responses}
}
