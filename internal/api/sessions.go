package api

import (
	"context"
	"errors"
	"fmt"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/NYBSA/Loadmovegh-platform-sub000/internal/errors"
	"github.com/NYBSA/Loadmovegh-platform-sub000/internal/models"
)

// CreateSession starts a new chat session on the service.
func (c *Client) CreateSession(ctx context.Context, opts *CreateSessionOptions) (*models.ChatSession, error) {
	payload := map[string]any{}
	if opts != nil {
		if opts.Title != "" {
			payload["title"] = opts.Title
		}
		if opts.ContextListingID != "" {
			payload["context_listing_id"] = opts.ContextListingID
		}
		if opts.ContextTripID != "" {
			payload["context_trip_id"] = opts.ContextTripID
		}
	}

	body, err := c.doJSON(ctx, http.MethodPost, c.baseURL+models.PathSessions, payload)
	if err != nil {
		return nil, err
	}

	session := parseSession(body)
	if session.ID == "" {
		return nil, apierrors.NewParseError("session response missing id", "id")
	}
	return &session, nil
}

// GetSessions lists the caller's sessions, newest first. 1-indexed pages;
// an empty page is a normal result.
func (c *Client) GetSessions(ctx context.Context, page int) ([]models.ChatSession, error) {
	if page < 1 {
		page = 1
	}

	url := fmt.Sprintf("%s%s?page=%d&limit=%d", c.baseURL, models.PathSessions, page, c.pageSize)
	body, err := c.doJSON(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	sessions := []models.ChatSession{}
	body.Get("sessions").ForEach(func(_, s gjson.Result) bool {
		sessions = append(sessions, parseSession(s))
		return true
	})
	return sessions, nil
}

// GetSession fetches a session with its full ordered message history.
func (c *Client) GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	if sessionID == "" {
		return nil, apierrors.NewValidationError("session_id", "must not be empty")
	}

	url := c.baseURL + fmt.Sprintf(models.PathSessionByID, sessionID)
	body, err := c.doJSON(ctx, http.MethodGet, url, nil)
	if err != nil {
		if errors.Is(err, apierrors.ErrNotFound) {
			return nil, apierrors.NewNotFoundError("chat session", sessionID)
		}
		return nil, err
	}

	detail := &models.SessionDetail{
		ChatSession: parseSession(body),
		Messages:    parseMessages(body.Get("messages")),
	}
	detail.MessageCount = len(detail.Messages)
	return detail, nil
}

// GetSessionMessages fetches the ordered message history for a session.
func (c *Client) GetSessionMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	detail, err := c.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return detail.Messages, nil
}

// DeleteSession archives a session. A 404 is normalized to success so the
// operation stays idempotent from the caller's perspective.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apierrors.NewValidationError("session_id", "must not be empty")
	}

	url := c.baseURL + fmt.Sprintf(models.PathSessionByID, sessionID)
	_, err := c.doJSON(ctx, http.MethodDelete, url, nil)
	if errors.Is(err, apierrors.ErrNotFound) {
		return nil
	}
	return err
}
