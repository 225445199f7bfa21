package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

func reply(id, content string) *models.ChatMessage {
	return &models.ChatMessage{
		ID:      id,
		Role:    models.RoleAssistant,
		Content: content,
	}
}

func TestConversation_SendMessage_Ordering(t *testing.T) {
	mock := &api.MockAssistantClient{}
	conv := NewConversation(mock, "sess-1")
	ctx := context.Background()

	mock.SendMessageVal = reply("a1", "first answer")
	if _, err := conv.SendMessage(ctx, "first question"); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	mock.SendMessageVal = reply("a2", "second answer")
	if _, err := conv.SendMessage(ctx, "second question"); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	msgs := conv.Messages()
	if len(msgs) != 4 {
		t.Fatalf("len(messages) = %d, want 4", len(msgs))
	}
	wantContents := []string{"first question", "first answer", "second question", "second answer"}
	for i, want := range wantContents {
		if msgs[i].Content != want {
			t.Errorf("messages[%d] = %q, want %q", i, msgs[i].Content, want)
		}
	}
	if !msgs[0].IsUser() || !msgs[1].IsAssistant() {
		t.Error("roles out of order")
	}
	if conv.IsSending() {
		t.Error("IsSending() = true after completion")
	}
	if conv.LastError() != nil {
		t.Errorf("LastError() = %v after success", conv.LastError())
	}
}

func TestConversation_SendMessage_RejectsOverlap(t *testing.T) {
	mock := &api.MockAssistantClient{}
	conv := NewConversation(mock, "sess-1")

	release := make(chan struct{})
	started := make(chan struct{})
	mock.SendMessageFunc = func(ctx context.Context, sessionID, content string, opts *api.SendOptions) (*models.ChatMessage, error) {
		close(started)
		<-release
		return reply("a1", "done"), nil
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if _, err := conv.SendMessage(context.Background(), "slow one"); err != nil {
			t.Errorf("first send failed: %v", err)
		}
	}()

	<-started
	_, err := conv.SendMessage(context.Background(), "too eager")
	if !errors.Is(err, ErrSendInFlight) {
		t.Fatalf("second send error = %v, want ErrSendInFlight", err)
	}

	// The rejected send must not have touched state or the network.
	if got := len(conv.Messages()); got != 1 {
		t.Errorf("len(messages) = %d during flight, want 1", got)
	}
	if mock.SendMessageCalls != 1 {
		t.Errorf("SendMessageCalls = %d, want 1", mock.SendMessageCalls)
	}

	close(release)
	wg.Wait()

	msgs := conv.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(messages) = %d after completion, want 2", len(msgs))
	}
	if msgs[1].Content != "done" {
		t.Errorf("reply = %q", msgs[1].Content)
	}
}

func TestConversation_SendMessage_FailureKeepsUserMessage(t *testing.T) {
	mock := &api.MockAssistantClient{
		SendMessageErr: apierrors.NewServiceError(503, "/assistant", "overloaded"),
	}
	conv := NewConversation(mock, "sess-1")
	ctx := context.Background()

	_, err := conv.SendMessage(ctx, "doomed question")
	if err == nil {
		t.Fatal("expected error")
	}

	msgs := conv.Messages()
	if len(msgs) != 1 {
		t.Fatalf("len(messages) = %d, want the user message kept", len(msgs))
	}
	if msgs[0].Content != "doomed question" || !msgs[0].IsUser() {
		t.Errorf("kept message wrong: %+v", msgs[0])
	}
	if conv.IsSending() {
		t.Error("IsSending() stuck after failure")
	}
	if !apierrors.IsRetryable(conv.LastError()) {
		t.Errorf("LastError() = %v, want retryable", conv.LastError())
	}

	// Retry succeeds and clears the recorded error.
	mock.SendMessageErr = nil
	mock.SendMessageVal = reply("a1", "recovered")
	if _, err := conv.SendMessage(ctx, "doomed question"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if conv.LastError() != nil {
		t.Errorf("LastError() = %v after successful retry", conv.LastError())
	}
	if got := len(conv.Messages()); got != 3 {
		t.Errorf("len(messages) = %d, want 3", got)
	}
}

func TestConversation_Clear(t *testing.T) {
	mock := &api.MockAssistantClient{SendMessageVal: reply("a1", "hi")}
	conv := NewConversation(mock, "sess-1")
	ctx := context.Background()

	if _, err := conv.SendMessage(ctx, "hello"); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}
	conv.Clear()

	if got := len(conv.Messages()); got != 0 {
		t.Errorf("len(messages) = %d after Clear, want 0", got)
	}
	if conv.LastError() != nil || conv.IsSending() {
		t.Error("Clear left residual state")
	}

	// Clear is local only.
	if mock.DeleteSessionCalls != 0 {
		t.Errorf("Clear touched the service: %d delete calls", mock.DeleteSessionCalls)
	}

	// The session binding survives and the next send works.
	if _, err := conv.SendMessage(ctx, "again"); err != nil {
		t.Fatalf("send after Clear failed: %v", err)
	}
	if mock.LastSessionID != "sess-1" {
		t.Errorf("LastSessionID = %q", mock.LastSessionID)
	}
}

func TestConversation_Clear_DiscardsLateReply(t *testing.T) {
	mock := &api.MockAssistantClient{}
	conv := NewConversation(mock, "sess-1")

	release := make(chan struct{})
	started := make(chan struct{})
	mock.SendMessageFunc = func(ctx context.Context, sessionID, content string, opts *api.SendOptions) (*models.ChatMessage, error) {
		close(started)
		<-release
		return reply("late", "too late"), nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = conv.SendMessage(context.Background(), "question")
	}()

	<-started
	conv.Clear()
	close(release)
	<-done

	if got := len(conv.Messages()); got != 0 {
		t.Errorf("late reply applied to cleared conversation: %d messages", got)
	}
	if conv.IsSending() {
		t.Error("IsSending() = true after Clear")
	}
}

func TestConversation_LoadHistory(t *testing.T) {
	mock := &api.MockAssistantClient{
		MessagesVal: []models.ChatMessage{
			{ID: "1", Role: models.RoleUser, Content: "q"},
			{ID: "2", Role: models.RoleAssistant, Content: "a"},
			{ID: "2", Role: models.RoleAssistant, Content: "a duplicate"},
		},
	}
	conv := NewConversation(mock, "sess-1")

	if err := conv.LoadHistory(context.Background()); err != nil {
		t.Fatalf("LoadHistory() unexpected error: %v", err)
	}

	msgs := conv.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len(messages) = %d, want duplicate ID dropped", len(msgs))
	}
	if msgs[1].Content != "a" {
		t.Errorf("first occurrence must win, got %q", msgs[1].Content)
	}
}

func TestConversation_Delete(t *testing.T) {
	mock := &api.MockAssistantClient{SendMessageVal: reply("a1", "hi")}
	conv := NewConversation(mock, "sess-1")
	ctx := context.Background()

	if _, err := conv.SendMessage(ctx, "hello"); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if err := conv.Delete(ctx); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if mock.DeleteSessionCalls != 1 {
		t.Errorf("DeleteSessionCalls = %d", mock.DeleteSessionCalls)
	}
	if got := len(conv.Messages()); got != 0 {
		t.Errorf("len(messages) = %d after Delete", got)
	}

	// Deleting again still succeeds; the client normalizes a missing
	// session to nil.
	if err := conv.Delete(ctx); err != nil {
		t.Errorf("second Delete() = %v, want nil", err)
	}
}

func TestConversation_SendPrompt(t *testing.T) {
	mock := &api.MockAssistantClient{SendMessageVal: reply("a1", "here you go")}
	conv := NewConversation(mock, "sess-1")

	prompt := models.SuggestedPrompt{Label: "Find loads", Message: "Find loads near me"}
	if _, err := conv.SendPrompt(context.Background(), prompt); err != nil {
		t.Fatalf("SendPrompt() unexpected error: %v", err)
	}
	if mock.LastContent != "Find loads near me" {
		t.Errorf("LastContent = %q", mock.LastContent)
	}
}

func TestConversation_RefreshSuggestions(t *testing.T) {
	mock := &api.MockAssistantClient{
		SuggestionsVal: []models.SuggestedPrompt{{Label: "Find loads"}},
	}
	conv := NewConversation(mock, "sess-1")

	if err := conv.RefreshSuggestions(context.Background()); err != nil {
		t.Fatalf("RefreshSuggestions() unexpected error: %v", err)
	}
	if len(conv.Suggestions()) != 1 {
		t.Fatalf("suggestions not stored")
	}

	// A refresh failure keeps the previous chips.
	mock.SuggestionsErr = apierrors.NewServiceError(500, "/assistant/suggestions", "boom")
	if err := conv.RefreshSuggestions(context.Background()); err == nil {
		t.Error("expected error")
	}
	if len(conv.Suggestions()) != 1 {
		t.Error("failed refresh dropped existing suggestions")
	}
}

func TestStartConversation(t *testing.T) {
	mock := &api.MockAssistantClient{
		CreateSessionVal: &models.ChatSession{ID: "fresh", Status: models.SessionActive},
	}

	conv, err := StartConversation(context.Background(), mock, "My loads")
	if err != nil {
		t.Fatalf("StartConversation() unexpected error: %v", err)
	}
	if conv.SessionID() != "fresh" {
		t.Errorf("SessionID() = %q", conv.SessionID())
	}

	mock.CreateSessionErr = apierrors.NewUnauthorizedError("expired")
	if _, err := StartConversation(context.Background(), mock, ""); !apierrors.IsUnauthorized(err) {
		t.Errorf("error = %v, want unauthorized", err)
	}
}

func TestConversation_ContextAnchors(t *testing.T) {
	var gotOpts *api.SendOptions
	mock := &api.MockAssistantClient{
		SendMessageFunc: func(ctx context.Context, sessionID, content string, opts *api.SendOptions) (*models.ChatMessage, error) {
			gotOpts = opts
			return reply("a1", "ok"), nil
		},
	}
	conv := NewConversation(mock, "sess-1")
	conv.SetContext("lst-9", "trp-4")

	if _, err := conv.SendMessage(context.Background(), "price this load"); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}
	if gotOpts == nil || gotOpts.ContextListingID != "lst-9" || gotOpts.ContextTripID != "trp-4" {
		t.Errorf("send options = %+v", gotOpts)
	}
}

func TestConversation_OptimisticMessageVisibleDuringFlight(t *testing.T) {
	mock := &api.MockAssistantClient{}
	conv := NewConversation(mock, "sess-1")

	release := make(chan struct{})
	started := make(chan struct{})
	mock.SendMessageFunc = func(ctx context.Context, sessionID, content string, opts *api.SendOptions) (*models.ChatMessage, error) {
		close(started)
		<-release
		return reply("a1", "ok"), nil
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = conv.SendMessage(context.Background(), "visible immediately")
	}()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("send never started")
	}

	msgs := conv.Messages()
	if len(msgs) != 1 || msgs[0].Content != "visible immediately" {
		t.Errorf("optimistic message not visible mid-flight: %v", msgs)
	}
	if !conv.IsSending() {
		t.Error("IsSending() = false mid-flight")
	}

	close(release)
	<-done
}
