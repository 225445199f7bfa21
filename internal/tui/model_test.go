package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/chat"
	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

func testConversation() (*api.MockAssistantClient, *chat.Conversation) {
	mock := &api.MockAssistantClient{}
	return mock, chat.NewConversation(mock, "sess-1")
}

func TestNewChatModel(t *testing.T) {
	_, conv := testConversation()
	m := NewChatModel(conv)

	if m.loading {
		t.Error("new model is loading")
	}
	if m.ready {
		t.Error("model ready before first WindowSizeMsg")
	}
	if m.textarea.Placeholder == "" {
		t.Error("textarea placeholder not set")
	}
}

func TestModel_WindowSize(t *testing.T) {
	_, conv := testConversation()
	m := NewChatModel(conv)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	model := updated.(Model)

	if !model.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if model.viewport.Width != 96 {
		t.Errorf("viewport width = %d, want 96", model.viewport.Width)
	}

	view := model.View()
	if !strings.Contains(view, "LoadMove Assistant") {
		t.Error("header missing from view")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	_, conv := testConversation()
	m := NewChatModel(conv)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("ctrl+c produced %v, want quit", msg)
	}
}

func TestModel_ResponseAndError(t *testing.T) {
	_, conv := testConversation()
	m := NewChatModel(conv)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = sized.(Model)
	m.loading = true

	updated, _ := m.Update(responseMsg{reply: &models.ChatMessage{ID: "a", Role: models.RoleAssistant, Content: "hi"}})
	model := updated.(Model)
	if model.loading {
		t.Error("loading still true after response")
	}

	model.loading = true
	failed, _ := model.Update(errMsg{err: apierrors.NewRateLimitError("", 30)})
	model = failed.(Model)
	if model.loading {
		t.Error("loading still true after error")
	}
	if model.err == nil {
		t.Fatal("error not recorded")
	}
	if !strings.Contains(model.View(), "rate limited") {
		t.Error("error missing from view")
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unauthorized hint",
			err:  apierrors.NewUnauthorizedError("expired"),
			want: "set-token",
		},
		{
			name: "rate limit hint",
			err:  apierrors.NewRateLimitError("", 0),
			want: "usage limit",
		},
		{
			name: "service status",
			err:  apierrors.NewServiceError(503, "/assistant", "overloaded"),
			want: "HTTP Status: 503",
		},
		{
			name: "validation hint",
			err:  apierrors.NewValidationError("content", "too long"),
			want: "message content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatError(tt.err); !strings.Contains(got, tt.want) {
				t.Errorf("FormatError() = %q, want substring %q", got, tt.want)
			}
		})
	}

	if FormatError(nil) != "" {
		t.Error("FormatError(nil) should be empty")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}
