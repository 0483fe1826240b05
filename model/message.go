package model

import "time"

// Message represents a single entry in a user's conversation history
type Message struct {
	Role      string
	Content   string
	Timestamp time.Time
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
