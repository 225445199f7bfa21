package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	http "github.com/bogdanfinn/fhttp"

	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// maxMessageLength matches the service's content limit.
const maxMessageLength = 4000

// SendMessage sends a user message and returns the assistant's reply. The
// reply envelope's token accounting is folded into the returned message.
func (c *Client) SendMessage(ctx context.Context, sessionID, content string, opts *SendOptions) (*models.ChatMessage, error) {
	if sessionID == "" {
		return nil, apierrors.NewValidationError("session_id", "must not be empty")
	}
	if strings.TrimSpace(content) == "" {
		return nil, apierrors.NewValidationError("content", "must not be empty")
	}
	if len(content) > maxMessageLength {
		return nil, apierrors.NewValidationError("content", fmt.Sprintf("exceeds %d characters", maxMessageLength))
	}

	payload := map[string]any{"content": content}
	if opts != nil {
		if opts.ContextListingID != "" {
			payload["context_listing_id"] = opts.ContextListingID
		}
		if opts.ContextTripID != "" {
			payload["context_trip_id"] = opts.ContextTripID
		}
	}

	url := c.baseURL + fmt.Sprintf(models.PathSessionMessages, sessionID)
	body, err := c.doJSON(ctx, http.MethodPost, url, payload)
	if err != nil {
		if errors.Is(err, apierrors.ErrNotFound) {
			return nil, apierrors.NewNotFoundError("chat session", sessionID)
		}
		return nil, err
	}

	replyBody := body.Get("reply")
	if !replyBody.Exists() {
		return nil, apierrors.NewParseError("send response missing reply", "reply")
	}

	reply := parseMessage(replyBody)
	if reply.Role == "" {
		reply.Role = models.RoleAssistant
	}
	// Envelope-level token counts win over per-message ones when present.
	if n := body.Get("prompt_tokens"); n.Exists() {
		reply.PromptTokens = int(n.Int())
	}
	if n := body.Get("completion_tokens"); n.Exists() {
		reply.CompletionTokens = int(n.Int())
	}
	return &reply, nil
}

// QuickAction runs a one-shot action with no session side effects.
func (c *Client) QuickAction(ctx context.Context, action string, params map[string]any) (*models.QuickActionResult, error) {
	if action == "" {
		return nil, apierrors.NewValidationError("action", "must not be empty")
	}
	if params == nil {
		params = map[string]any{}
	}

	payload := map[string]any{
		"action": action,
		"params": params,
	}

	body, err := c.doJSON(ctx, http.MethodPost, c.baseURL+models.PathQuickAction, payload)
	if err != nil {
		return nil, err
	}

	return &models.QuickActionResult{
		Action:           body.Get("action").String(),
		Result:           rawJSON(body.Get("result")),
		AssistantMessage: body.Get("assistant_message").String(),
		PromptTokens:     int(body.Get("prompt_tokens").Int()),
		CompletionTokens: int(body.Get("completion_tokens").Int()),
		LatencyMS:        int(body.Get("latency_ms").Int()),
	}, nil
}

// GetSuggestions returns contextual prompt chips for the chat input.
func (c *Client) GetSuggestions(ctx context.Context) ([]models.SuggestedPrompt, error) {
	body, err := c.doJSON(ctx, http.MethodGet, c.baseURL+models.PathSuggestions, nil)
	if err != nil {
		return nil, err
	}
	return parseSuggestions(body.Get("prompts")), nil
}
