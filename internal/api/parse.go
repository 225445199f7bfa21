package api

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// parseTime decodes the service's RFC 3339 timestamps. Unparseable values
// become the zero time rather than failing the whole message.
func parseTime(g gjson.Result) time.Time {
	if !g.Exists() {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, g.String()); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999", g.String()); err == nil {
		return t
	}
	return time.Time{}
}

// rawJSON captures a subtree verbatim so the opaque tool mappings survive
// untouched. Missing or non-object values become an empty object.
func rawJSON(g gjson.Result) json.RawMessage {
	if !g.Exists() || g.Raw == "" {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(g.Raw)
}

// parseSession decodes a session summary object.
func parseSession(g gjson.Result) models.ChatSession {
	return models.ChatSession{
		ID:                    g.Get("id").String(),
		Title:                 g.Get("title").String(),
		Status:                models.SessionStatus(g.Get("status").String()),
		MessageCount:          int(g.Get("message_count").Int()),
		TotalPromptTokens:     int(g.Get("total_prompt_tokens").Int()),
		TotalCompletionTokens: int(g.Get("total_completion_tokens").Int()),
		CreatedAt:             parseTime(g.Get("created_at")),
		UpdatedAt:             parseTime(g.Get("updated_at")),
	}
}

// parseToolCalls decodes the ordered tool call list of a message.
func parseToolCalls(g gjson.Result) []models.ToolCall {
	if !g.IsArray() {
		return nil
	}
	var calls []models.ToolCall
	g.ForEach(func(_, tc gjson.Result) bool {
		calls = append(calls, models.ToolCall{
			ToolName:  tc.Get("tool_name").String(),
			Arguments: rawJSON(tc.Get("arguments")),
			Result:    rawJSON(tc.Get("result")),
		})
		return true
	})
	return calls
}

// parseMessage decodes a chat message object.
func parseMessage(g gjson.Result) models.ChatMessage {
	return models.ChatMessage{
		ID:               g.Get("id").String(),
		Role:             models.MessageRole(g.Get("role").String()),
		Content:          g.Get("content").String(),
		ToolCalls:        parseToolCalls(g.Get("tool_calls")),
		ModelUsed:        g.Get("model_used").String(),
		PromptTokens:     int(g.Get("prompt_tokens").Int()),
		CompletionTokens: int(g.Get("completion_tokens").Int()),
		LatencyMS:        int(g.Get("latency_ms").Int()),
		CreatedAt:        parseTime(g.Get("created_at")),
	}
}

// parseMessages decodes an ordered message array, preserving service order.
func parseMessages(g gjson.Result) []models.ChatMessage {
	messages := []models.ChatMessage{}
	if !g.IsArray() {
		return messages
	}
	g.ForEach(func(_, m gjson.Result) bool {
		messages = append(messages, parseMessage(m))
		return true
	})
	return messages
}

// parseSuggestions decodes the prompt chip list.
func parseSuggestions(g gjson.Result) []models.SuggestedPrompt {
	prompts := []models.SuggestedPrompt{}
	if !g.IsArray() {
		return prompts
	}
	g.ForEach(func(_, p gjson.Result) bool {
		prompts = append(prompts, models.SuggestedPrompt{
			Icon:     p.Get("icon").String(),
			Label:    p.Get("label").String(),
			Message:  p.Get("message").String(),
			Category: p.Get("category").String(),
		})
		return true
	})
	return prompts
}
