package tickets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/greencycle/ecopoints/pkg/clients"
	"go.uber.org/zap"
)

// Client talks to the external ticket-issuing system. Issue is retried by
// the issuer side on the idempotency key, Cancel is best effort.
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

type issueRequest struct {
	UserID         int    `json:"user_id"`
	Description    string `json:"description"`
	Amount         int64  `json:"amount"`
	IdempotencyKey string `json:"idempotency_key"`
}

type issueResponse struct {
	Ref string `json:"ref"`
}

func (c *Client) Issue(ctx context.Context, userID int, description string, amount int64) (string, error) {
	body, err := json.Marshal(issueRequest{
		UserID:         userID,
		Description:    description,
		Amount:         amount,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode ticket request: %w", err)
	}

	statusCode, respBody, err := c.client.Post(ctx, c.url+"/api/tickets", nil, body)
	if err != nil {
		return "", fmt.Errorf("ticket system unreachable: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusCreated {
		return "", fmt.Errorf("ticket system returned status %d", statusCode)
	}

	var resp issueResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to parse ticket response: %w", err)
	}
	if resp.Ref == "" {
		return "", fmt.Errorf("ticket system returned empty ref")
	}
	return resp.Ref, nil
}

func (c *Client) Cancel(ctx context.Context, ref string) error {
	statusCode, err := c.client.Delete(ctx, c.url+"/api/tickets/"+ref, nil)
	if err != nil {
		return fmt.Errorf("ticket system unreachable: %w", err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusNoContent {
		return fmt.Errorf("ticket system returned status %d", statusCode)
	}
	zap.L().Info("ticket cancelled", zap.String("ref", ref))
	return nil
}
