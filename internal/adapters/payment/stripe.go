// Package payment contains the adapter for the external payment-intent
// provider (Stripe). Only the payment_intents endpoint is used; the returned
// client secret is handed to the buyer's client to confirm the payment.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	portssvc "github.com/earnbuddy/backend/internal/core/ports/services"
	"github.com/earnbuddy/backend/internal/utils"
)

const defaultAPIBase = "https://api.stripe.com/v1"

// StripeClient implements the PaymentIntentProvider port against Stripe's
// REST API using form-encoded requests.
type StripeClient struct {
	secretKey  string
	apiBase    string
	httpClient *http.Client
}

var _ portssvc.PaymentIntentProvider = (*StripeClient)(nil)

// NewStripeClient creates a Stripe-backed payment intent provider.
func NewStripeClient(secretKey string) *StripeClient {
	return &StripeClient{
		secretKey: secretKey,
		apiBase:   defaultAPIBase,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// NewStripeClientWithBase is used by tests to point the client at a stub server.
func NewStripeClientWithBase(secretKey, apiBase string) *StripeClient {
	c := NewStripeClient(secretKey)
	c.apiBase = apiBase
	return c
}

type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type stripeErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// CreateIntent creates a payment intent for the given amount in minor units
// and returns the client secret.
func (c *StripeClient) CreateIntent(ctx context.Context, amountMinor int64, currency string) (string, error) {
	if c.secretKey == "" {
		return "", fmt.Errorf("stripe secret key is not configured")
	}
	if amountMinor <= 0 {
		return "", fmt.Errorf("payment amount must be positive, got %d", amountMinor)
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountMinor, 10))
	form.Set("currency", currency)
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build payment intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Stripe deduplicates retried requests that carry the same idempotency key.
	idempotencyKey, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate idempotency key: %w", err)
	}
	req.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payment intent request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var stripeErr stripeErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&stripeErr); err == nil && stripeErr.Error.Message != "" {
			return "", fmt.Errorf("stripe returned %d: %s", resp.StatusCode, stripeErr.Error.Message)
		}
		return "", fmt.Errorf("stripe returned non-200 status: %s", resp.Status)
	}

	var intent paymentIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", fmt.Errorf("failed to decode payment intent response: %w", err)
	}
	if intent.ClientSecret == "" {
		return "", fmt.Errorf("payment intent response missing client secret")
	}
	return intent.ClientSecret, nil
}
