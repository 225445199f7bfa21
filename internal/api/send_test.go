package api

import (
	"context"
	"io"
	"strings"
	"testing"

	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

func TestSendMessage_Validation(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		content   string
	}{
		{"empty session id", "", "hello"},
		{"empty content", "sess-1", ""},
		{"whitespace content", "sess-1", "   \n\t  "},
		{"content too long", "sess-1", strings.Repeat("a", 4001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockHttpClient{}
			client := newTestClient(t, mock)

			_, err := client.SendMessage(context.Background(), tt.sessionID, tt.content, nil)
			if !apierrors.IsValidation(err) {
				t.Errorf("error = %v, want validation", err)
			}
			if mock.Requests != 0 {
				t.Errorf("validation failure reached the network: %d requests", mock.Requests)
			}
		})
	}
}

func TestSendMessage(t *testing.T) {
	body := `{
		"session_id": "sess-1",
		"reply": {
			"id": "m9", "role": "assistant", "content": "Here are three loads.",
			"model_used": "gpt-4o-mini", "latency_ms": 1200,
			"tool_calls": [{"tool_name": "suggest_best_loads", "arguments": {}, "result": {"loads_found": 3}}]
		},
		"tool_calls_made": 1,
		"prompt_tokens": 640,
		"completion_tokens": 88
	}`
	mock := NewMockHttpClient([]byte(body), 200)
	client := newTestClient(t, mock)

	reply, err := client.SendMessage(context.Background(), "sess-1", "find me loads", nil)
	if err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}
	if reply.ID != "m9" {
		t.Errorf("ID = %q", reply.ID)
	}
	if !reply.IsAssistant() {
		t.Errorf("Role = %q, want assistant", reply.Role)
	}
	if reply.Content != "Here are three loads." {
		t.Errorf("Content = %q", reply.Content)
	}
	// Envelope counters override the message's own.
	if reply.PromptTokens != 640 || reply.CompletionTokens != 88 {
		t.Errorf("tokens = %d/%d, want 640/88", reply.PromptTokens, reply.CompletionTokens)
	}
	if !reply.HasToolCalls() {
		t.Error("tool calls missing")
	}
}

func TestSendMessage_ContextAnchors(t *testing.T) {
	mock := NewMockHttpClient([]byte(`{"reply": {"id": "m1", "role": "assistant", "content": "ok"}}`), 200)
	client := newTestClient(t, mock)

	opts := &SendOptions{ContextListingID: "lst-7", ContextTripID: "trp-3"}
	if _, err := client.SendMessage(context.Background(), "sess-1", "price this", opts); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	sent, _ := io.ReadAll(mock.LastRequest.Body)
	payload := string(sent)
	for _, want := range []string{`"context_listing_id":"lst-7"`, `"context_trip_id":"trp-3"`, `"content":"price this"`} {
		if !strings.Contains(payload, want) {
			t.Errorf("request body missing %s: %s", want, payload)
		}
	}
}

func TestSendMessage_MissingReply(t *testing.T) {
	mock := NewMockHttpClient([]byte(`{"session_id": "sess-1"}`), 200)
	client := newTestClient(t, mock)

	_, err := client.SendMessage(context.Background(), "sess-1", "hello", nil)
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSendMessage_SessionGone(t *testing.T) {
	mock := NewMockHttpClient([]byte(`{"detail": "Chat session not found"}`), 404)
	client := newTestClient(t, mock)

	_, err := client.SendMessage(context.Background(), "gone", "hello", nil)
	if !apierrors.IsNotFound(err) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestQuickAction(t *testing.T) {
	body := `{
		"action": "optimize_route",
		"result": {"route": "Accra → Tamale", "distance_km": 618},
		"assistant_message": "The trip takes about 9 hours.",
		"prompt_tokens": 210, "completion_tokens": 45, "latency_ms": 900
	}`
	mock := NewMockHttpClient([]byte(body), 200)
	client := newTestClient(t, mock)

	result, err := client.QuickAction(context.Background(), models.ActionOptimizeRoute, map[string]any{
		"origin": "Accra", "destination": "Tamale",
	})
	if err != nil {
		t.Fatalf("QuickAction() unexpected error: %v", err)
	}
	if result.Action != "optimize_route" {
		t.Errorf("Action = %q", result.Action)
	}
	if !strings.Contains(string(result.Result), "distance_km") {
		t.Errorf("Result lost the payload: %s", result.Result)
	}
	if result.AssistantMessage == "" {
		t.Error("AssistantMessage empty")
	}
	if result.PromptTokens != 210 || result.CompletionTokens != 45 {
		t.Errorf("tokens = %d/%d", result.PromptTokens, result.CompletionTokens)
	}
}

func TestQuickAction_EmptyAction(t *testing.T) {
	client := newTestClient(t, &MockHttpClient{})
	if _, err := client.QuickAction(context.Background(), "", nil); !apierrors.IsValidation(err) {
		t.Errorf("error = %v, want validation", err)
	}
}

func TestGetSuggestions(t *testing.T) {
	body := `{"prompts": [
		{"icon": "truck", "label": "Find loads", "message": "Find loads near me", "category": "loads"},
		{"icon": "cedi", "label": "Price a trip", "message": "What should I charge from Tema to Kumasi?", "category": "pricing"}
	]}`
	mock := NewMockHttpClient([]byte(body), 200)
	client := newTestClient(t, mock)

	prompts, err := client.GetSuggestions(context.Background())
	if err != nil {
		t.Fatalf("GetSuggestions() unexpected error: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("len(prompts) = %d, want 2", len(prompts))
	}
	if prompts[0].Label != "Find loads" || prompts[1].Category != "pricing" {
		t.Errorf("prompts decoded wrong: %+v", prompts)
	}
}
