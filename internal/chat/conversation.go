// Package chat owns per-session conversation state: the ordered message
// sequence, the single-in-flight send, the last error and the suggestion
// chips. A Conversation belongs to exactly one view; all mutation goes
// through its methods.
package chat

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/api"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// ErrSendInFlight is returned when SendMessage is called while a previous
// send on the same conversation has not resolved. The rejected call has no
// effect: no state change, no network traffic.
var ErrSendInFlight = errors.New("a send is already in flight for this conversation")

// Conversation is the client-local state for one chat session.
//
// State machine per send: Idle -> Sending (user message appended
// optimistically) -> Idle. On success the reply is appended and any prior
// error cleared; on failure the user message stays, the error is recorded,
// and the next SendMessage may retry.
type Conversation struct {
	client    api.AssistantClient
	sessionID string

	mu          sync.RWMutex
	messages    []models.ChatMessage
	seen        map[string]struct{}
	sending     bool
	lastErr     error
	suggestions []models.SuggestedPrompt
	generation  uint64

	contextListingID string
	contextTripID    string
}

// NewConversation creates conversation state bound to an existing session.
func NewConversation(client api.AssistantClient, sessionID string) *Conversation {
	return &Conversation{
		client:    client,
		sessionID: sessionID,
		seen:      map[string]struct{}{},
	}
}

// StartConversation creates a fresh session on the service and returns a
// conversation bound to it.
func StartConversation(ctx context.Context, client api.AssistantClient, title string) (*Conversation, error) {
	session, err := client.CreateSession(ctx, &api.CreateSessionOptions{Title: title})
	if err != nil {
		return nil, err
	}
	return NewConversation(client, session.ID), nil
}

// SessionID returns the bound session identifier.
func (c *Conversation) SessionID() string {
	return c.sessionID
}

// SetContext attaches listing/trip anchors sent with every message so the
// assistant can scope load and route queries.
func (c *Conversation) SetContext(listingID, tripID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.contextListingID = listingID
	c.contextTripID = tripID
}

// Messages returns a copy of the ordered message sequence.
func (c *Conversation) Messages() []models.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// IsSending reports whether a send is currently in flight.
func (c *Conversation) IsSending() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sending
}

// LastError returns the error recorded by the most recent failed
// operation, or nil after a success or reset.
func (c *Conversation) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// Suggestions returns the current prompt chips.
func (c *Conversation) Suggestions() []models.SuggestedPrompt {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.SuggestedPrompt, len(c.suggestions))
	copy(out, c.suggestions)
	return out
}

// appendLocked adds a message unless its identifier was already seen.
// Never reorders; duplicates are dropped by ID only.
func (c *Conversation) appendLocked(msg models.ChatMessage) {
	if msg.ID != "" {
		if _, dup := c.seen[msg.ID]; dup {
			return
		}
		c.seen[msg.ID] = struct{}{}
	}
	c.messages = append(c.messages, msg)
}

// LoadHistory replaces the local sequence with the service's full ordered
// history for the session.
func (c *Conversation) LoadHistory(ctx context.Context) error {
	history, err := c.client.GetSessionMessages(ctx, c.sessionID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.lastErr = err
		return err
	}
	c.messages = nil
	c.seen = map[string]struct{}{}
	for _, msg := range history {
		c.appendLocked(msg)
	}
	c.lastErr = nil
	return nil
}

// SendMessage sends a user message and appends the assistant's reply.
//
// The user message is appended before dispatch so it renders immediately;
// it is never rolled back, even on failure. A call made while a send is in
// flight returns ErrSendInFlight without touching state. If the
// conversation was cleared while the request was outstanding, the late
// result is discarded.
func (c *Conversation) SendMessage(ctx context.Context, content string) (*models.ChatMessage, error) {
	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return nil, ErrSendInFlight
	}
	c.sending = true
	gen := c.generation
	c.appendLocked(models.ChatMessage{
		ID:        "local-" + uuid.NewString(),
		Role:      models.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	opts := &api.SendOptions{
		ContextListingID: c.contextListingID,
		ContextTripID:    c.contextTripID,
	}
	c.mu.Unlock()

	reply, err := c.client.SendMessage(ctx, c.sessionID, content, opts)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		// The view was cleared or torn down mid-flight; the state this
		// result belonged to no longer exists.
		return reply, err
	}
	c.sending = false
	if err != nil {
		c.lastErr = err
		return nil, err
	}
	c.lastErr = nil
	if reply != nil {
		c.appendLocked(*reply)
	}
	return reply, nil
}

// SendPrompt sends the message text of a suggestion chip.
func (c *Conversation) SendPrompt(ctx context.Context, prompt models.SuggestedPrompt) (*models.ChatMessage, error) {
	return c.SendMessage(ctx, prompt.Message)
}

// RefreshSuggestions fetches the current prompt chips. A failure leaves
// the existing chips in place and is not recorded as the conversation
// error; chips are decorative.
func (c *Conversation) RefreshSuggestions(ctx context.Context) error {
	prompts, err := c.client.GetSuggestions(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.suggestions = prompts
	c.mu.Unlock()
	return nil
}

// Clear resets the conversation to its initial empty state. Local only:
// the remote session is untouched. Any in-flight send's result will be
// discarded when it lands.
func (c *Conversation) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
	c.seen = map[string]struct{}{}
	c.sending = false
	c.lastErr = nil
	c.generation++
}

// Delete archives the remote session and resets local state. Idempotent
// end to end because the client normalizes a missing session to success.
func (c *Conversation) Delete(ctx context.Context) error {
	if err := c.client.DeleteSession(ctx, c.sessionID); err != nil {
		c.mu.Lock()
		c.lastErr = err
		c.mu.Unlock()
		return err
	}
	c.Clear()
	return nil
}
