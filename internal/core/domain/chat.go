package domain

import "time"

// ChatHistoryLimit bounds the persisted chat collection. The oldest messages
// beyond this limit are silently dropped on every append.
const ChatHistoryLimit = 50

// ChatMessage is one message in the shared team channel. Messages are never
// edited or individually deleted. UserName is a creation-time snapshot.
type ChatMessage struct {
	MessageID string    `json:"messageID"`
	UserID    string    `json:"userID"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ID implements the snapshot collection contract.
func (m ChatMessage) ID() string { return m.MessageID }
