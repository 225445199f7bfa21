package api

import (
	"context"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// MockAssistantClient is a mock implementation of AssistantClient for testing
type MockAssistantClient struct {
	// Mock return values
	CreateSessionVal *models.ChatSession
	CreateSessionErr error
	SessionsVal      []models.ChatSession
	SessionsErr      error
	SessionDetailVal *models.SessionDetail
	SessionDetailErr error
	MessagesVal      []models.ChatMessage
	MessagesErr      error
	SendMessageVal   *models.ChatMessage
	SendMessageErr   error
	QuickActionVal   *models.QuickActionResult
	QuickActionErr   error
	SuggestionsVal   []models.SuggestedPrompt
	SuggestionsErr   error
	DeleteSessionErr error

	// SendMessageFunc, when set, overrides SendMessageVal/Err. Used by
	// tests that need per-call behavior (blocking, sequencing).
	SendMessageFunc func(ctx context.Context, sessionID, content string, opts *SendOptions) (*models.ChatMessage, error)

	// Call counters/recorders
	SendMessageCalls   int
	DeleteSessionCalls int
	LastSessionID      string
	LastContent        string
	LastAction         string
	LastParams         map[string]any
	LastPage           int
}

// Ensure MockAssistantClient implements AssistantClient
var _ AssistantClient = (*MockAssistantClient)(nil)

func (m *MockAssistantClient) CreateSession(ctx context.Context, opts *CreateSessionOptions) (*models.ChatSession, error) {
	return m.CreateSessionVal, m.CreateSessionErr
}

func (m *MockAssistantClient) GetSessions(ctx context.Context, page int) ([]models.ChatSession, error) {
	m.LastPage = page
	return m.SessionsVal, m.SessionsErr
}

func (m *MockAssistantClient) GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	m.LastSessionID = sessionID
	return m.SessionDetailVal, m.SessionDetailErr
}

func (m *MockAssistantClient) GetSessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	m.LastSessionID = sessionID
	return m.MessagesVal, m.MessagesErr
}

func (m *MockAssistantClient) SendMessage(ctx context.Context, sessionID, content string, opts *SendOptions) (*models.ChatMessage, error) {
	m.SendMessageCalls++
	m.LastSessionID = sessionID
	m.LastContent = content
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, sessionID, content, opts)
	}
	return m.SendMessageVal, m.SendMessageErr
}

func (m *MockAssistantClient) QuickAction(ctx context.Context, action string, params map[string]any) (*models.QuickActionResult, error) {
	m.LastAction = action
	m.LastParams = params
	return m.QuickActionVal, m.QuickActionErr
}

func (m *MockAssistantClient) GetSuggestions(ctx context.Context) ([]models.SuggestedPrompt, error) {
	return m.SuggestionsVal, m.SuggestionsErr
}

func (m *MockAssistantClient) DeleteSession(ctx context.Context, sessionID string) error {
	m.DeleteSessionCalls++
	m.LastSessionID = sessionID
	return m.DeleteSessionErr
}
