package payment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costariann/gye-nyame-hotel/internal/payment"
)

func TestPaystackClient_Initialize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transaction/initialize", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_secret", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ama@example.com", body["email"])
		assert.EqualValues(t, 18000, body["amount"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Authorization URL created",
			"data": map[string]any{
				"authorization_url": "https://checkout.paystack.com/abc123",
				"access_code":       "abc123",
				"reference":         "T123456",
			},
		})
	}))
	defer srv.Close()

	client := payment.NewPaystackClient(srv.URL, "sk_test_secret")
	session, err := client.Initialize(context.Background(), "ama@example.com", 18000)

	require.NoError(t, err)
	assert.Equal(t, "T123456", session.Reference)
	assert.Equal(t, "https://checkout.paystack.com/abc123", session.AuthorizationURL)
}

func TestPaystackClient_InitializeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  false,
			"message": "Invalid key",
		})
	}))
	defer srv.Close()

	client := payment.NewPaystackClient(srv.URL, "bad-key")
	_, err := client.Initialize(context.Background(), "ama@example.com", 18000)

	assert.ErrorIs(t, err, payment.ErrGateway)
}

func TestPaystackClient_Verify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/T123456", r.URL.Path)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]any{
				"status":    "success",
				"reference": "T123456",
			},
		})
	}))
	defer srv.Close()

	client := payment.NewPaystackClient(srv.URL, "sk_test_secret")
	status, err := client.Verify(context.Background(), "T123456")

	require.NoError(t, err)
	assert.Equal(t, "success", status)
}

func TestPaystackClient_ServerErrorIsGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := payment.NewPaystackClient(srv.URL, "sk_test_secret")
	_, err := client.Verify(context.Background(), "T123456")

	assert.ErrorIs(t, err, payment.ErrGateway)
}
