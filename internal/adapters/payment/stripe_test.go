package payment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/earnbuddy/backend/internal/adapters/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIntent_SendsFormEncodedAmount(t *testing.T) {
	var gotAuth, gotAmount, gotCurrency, gotIdemKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payment_intents", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotAuth = r.Header.Get("Authorization")
		gotAmount = r.PostFormValue("amount")
		gotCurrency = r.PostFormValue("currency")
		gotIdemKey = r.Header.Get("Idempotency-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_abc"}`))
	}))
	defer server.Close()

	client := payment.NewStripeClientWithBase("sk_test_xyz", server.URL)
	secret, err := client.CreateIntent(context.Background(), 999, "usd")

	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)
	assert.Equal(t, "Bearer sk_test_xyz", gotAuth)
	assert.Equal(t, "999", gotAmount)
	assert.Equal(t, "usd", gotCurrency)
	assert.Len(t, gotIdemKey, 32)
}

func TestCreateIntent_ProviderErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined.","type":"card_error"}}`))
	}))
	defer server.Close()

	client := payment.NewStripeClientWithBase("sk_test_xyz", server.URL)
	secret, err := client.CreateIntent(context.Background(), 999, "usd")

	require.Error(t, err)
	assert.Empty(t, secret)
	assert.Contains(t, err.Error(), "card was declined")
}

func TestCreateIntent_RejectsNonPositiveAmount(t *testing.T) {
	client := payment.NewStripeClient("sk_test_xyz")
	secret, err := client.CreateIntent(context.Background(), 0, "usd")

	require.Error(t, err)
	assert.Empty(t, secret)
}

func TestCreateIntent_MissingSecretKey(t *testing.T) {
	client := payment.NewStripeClient("")
	secret, err := client.CreateIntent(context.Background(), 999, "usd")

	require.Error(t, err)
	assert.Empty(t, secret)
}

func TestCreateIntent_MissingClientSecretInResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_123"}`))
	}))
	defer server.Close()

	client := payment.NewStripeClientWithBase("sk_test_xyz", server.URL)
	secret, err := client.CreateIntent(context.Background(), 999, "usd")

	require.Error(t, err)
	assert.Empty(t, secret)
}
