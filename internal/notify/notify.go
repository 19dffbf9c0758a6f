package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/greencycle/ecopoints/pkg/clients"
)

// Client delivers user notifications to the external sink. Callers treat
// delivery as fire and forget: they log the returned error and move on.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

type notification struct {
	UserID   int       `json:"user_id"`
	Message  string    `json:"message"`
	Category string    `json:"category"`
	Expiry   time.Time `json:"expiry"`
}

func (c *Client) Notify(ctx context.Context, userID int, message, category string, expiry time.Time) error {
	body, err := json.Marshal(notification{
		UserID:   userID,
		Message:  message,
		Category: category,
		Expiry:   expiry,
	})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	statusCode, _, err := c.client.Post(ctx, c.url+"/api/notifications", nil, body)
	if err != nil {
		return fmt.Errorf("notification system unreachable: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		return fmt.Errorf("notification system returned status %d", statusCode)
	}
	return nil
}
