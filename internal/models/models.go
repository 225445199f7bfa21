// Package models contains data types and constants for the LoadMove
// assistant service API.
package models

import (
	"encoding/json"
	"time"
)

// MessageRole identifies who produced a chat message.
// Mirrors the service's role enum (OpenAI chat-completion roles).
type MessageRole string

// Known message roles
const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

// SessionStatus is the lifecycle state of a chat session.
type SessionStatus string

// Known session statuses
const (
	SessionActive   SessionStatus = "active"
	SessionArchived SessionStatus = "archived"
)

// ChatSession is a conversation thread tracked by the assistant service.
// The service owns every field; the client never mutates a session except
// by sending messages or deleting it.
type ChatSession struct {
	ID                    string        `json:"id"`
	Title                 string        `json:"title"`
	Status                SessionStatus `json:"status"`
	MessageCount          int           `json:"message_count"`
	TotalPromptTokens     int           `json:"total_prompt_tokens"`
	TotalCompletionTokens int           `json:"total_completion_tokens"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
}

// IsActive reports whether the session is still usable for sending messages.
func (s ChatSession) IsActive() bool {
	return s.Status == SessionActive
}

// ToolCall is a structured query the assistant performed while producing a
// reply. Arguments and Result are kept as raw JSON because their schema is
// owned by the service, not the client; interpretation is best-effort.
type ToolCall struct {
	ToolName  string          `json:"tool_name"`
	Arguments json.RawMessage `json:"arguments"`
	Result    json.RawMessage `json:"result"`
}

// ChatMessage is a single message in a session. Messages are immutable once
// received and appended in the order the service returns them.
type ChatMessage struct {
	ID               string      `json:"id"`
	Role             MessageRole `json:"role"`
	Content          string      `json:"content,omitempty"`
	ToolCalls        []ToolCall  `json:"tool_calls,omitempty"`
	ModelUsed        string      `json:"model_used,omitempty"`
	PromptTokens     int         `json:"prompt_tokens,omitempty"`
	CompletionTokens int         `json:"completion_tokens,omitempty"`
	LatencyMS        int         `json:"latency_ms"`
	CreatedAt        time.Time   `json:"created_at"`
}

// IsUser reports whether the message was written by the end user.
func (m ChatMessage) IsUser() bool {
	return m.Role == RoleUser
}

// IsAssistant reports whether the message is an assistant reply.
func (m ChatMessage) IsAssistant() bool {
	return m.Role == RoleAssistant
}

// HasToolCalls reports whether the message carries tool call results.
func (m ChatMessage) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

// SuggestedPrompt is a prompt chip shown above the chat input. Ephemeral;
// only used to seed a send action.
type SuggestedPrompt struct {
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Message  string `json:"message"`
	Category string `json:"category"`
}

// SessionDetail is a session together with its full ordered message history.
type SessionDetail struct {
	ChatSession
	Messages []ChatMessage `json:"messages"`
}

// QuickActionResult is the outcome of a one-shot action with no session
// side effects. Result is the raw tool output mapping.
type QuickActionResult struct {
	Action           string          `json:"action"`
	Result           json.RawMessage `json:"result"`
	AssistantMessage string          `json:"assistant_message,omitempty"`
	PromptTokens     int             `json:"prompt_tokens"`
	CompletionTokens int             `json:"completion_tokens"`
	LatencyMS        int             `json:"latency_ms"`
}
