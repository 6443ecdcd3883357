package models

import "time"

// ChatRole identifies the author of a chat message
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
	RoleSystem    ChatRole = "system"
)

// ChatAction is an optional quick action attached to an assistant message.
type ChatAction struct {
	Label  string `json:"label"`
	Action string `json:"action"`
	Data   any    `json:"data,omitempty"`
}

// ChatMessage is a single entry in the conversation history.
type ChatMessage struct {
	Role      ChatRole     `json:"role"`
	Content   string       `json:"content"`
	Timestamp time.Time    `json:"timestamp,omitempty"`
	Actions   []ChatAction `json:"actions,omitempty"`
}
