// Package api provides the client for the LoadMove assistant service.
package api

import (
	"context"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// CreateSessionOptions are the optional fields for CreateSession.
type CreateSessionOptions struct {
	Title string
	// Context anchors the assistant uses to scope load/pricing/route
	// queries. Both optional.
	ContextListingID string
	ContextTripID    string
}

// SendOptions are the optional fields for SendMessage.
type SendOptions struct {
	ContextListingID string
	ContextTripID    string
}

// AssistantClient is the contract the conversation layer depends on. Every
// method is one network round trip against the assistant service; all of
// them honor the context and the client's bounded timeout.
//
// Expected failures come back as the typed errors in internal/errors, never
// as panics. DeleteSession is idempotent: deleting a session that no longer
// exists succeeds.
type AssistantClient interface {
	// CreateSession starts a new chat session. An empty title lets the
	// service pick its default ("New conversation").
	CreateSession(ctx context.Context, opts *CreateSessionOptions) (*models.ChatSession, error)

	// GetSessions lists the caller's active sessions, newest first.
	// Pages are 1-indexed; a page past the end returns an empty slice,
	// not an error.
	GetSessions(ctx context.Context, page int) ([]models.ChatSession, error)

	// GetSession fetches a session with its full ordered message history.
	GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error)

	// GetSessionMessages fetches the ordered message history for a
	// session.
	GetSessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)

	// SendMessage sends a user message and returns the assistant's reply,
	// which may carry tool calls. Empty content fails with a
	// ValidationError before any network traffic.
	SendMessage(ctx context.Context, sessionID, content string, opts *SendOptions) (*models.ChatMessage, error)

	// QuickAction runs a one-shot action with no session side effects.
	QuickAction(ctx context.Context, action string, params map[string]any) (*models.QuickActionResult, error)

	// GetSuggestions returns contextual prompt chips; may be empty.
	GetSuggestions(ctx context.Context) ([]models.SuggestedPrompt, error)

	// DeleteSession archives a session. Idempotent by contract: a second
	// delete of the same ID succeeds.
	DeleteSession(ctx context.Context, sessionID string) error
}
