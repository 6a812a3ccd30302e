package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"dinehub/internal/config"
	"dinehub/internal/domain"
)

// PaymentGateway is the outbound side of the payment processor. The inbound
// side is the signed webhook handled by the payment service.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, lines []domain.OrderLine, customerEmail string, metadata map[string]string) (string, error)
}

type intentLine struct {
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

type createIntentRequest struct {
	Lines         []intentLine      `json:"line_items"`
	CustomerEmail string            `json:"customer_email"`
	Metadata      map[string]string `json:"metadata"`
}

type createIntentResponse struct {
	IntentID string `json:"intent_id"`
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		baseURL: cfg.GatewayURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateIntent(ctx context.Context, lines []domain.OrderLine, customerEmail string, metadata map[string]string) (string, error) {
	req := createIntentRequest{
		CustomerEmail: customerEmail,
		Metadata:      metadata,
	}
	for _, l := range lines {
		req.Lines = append(req.Lines, intentLine{Name: l.ItemName, Quantity: l.Quantity, UnitAmount: l.UnitPrice})
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal intent request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/intents", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("create intent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("create intent: gateway returned %d", resp.StatusCode)
	}
	var out createIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode intent response: %w", err)
	}
	if out.IntentID == "" {
		return "", fmt.Errorf("gateway returned empty intent id")
	}
	return out.IntentID, nil
}
