package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// GatewaySession is the result of opening a payment session with the
// gateway: the opaque transaction reference and the URL the guest is
// redirected to.
type GatewaySession struct {
	Reference        string
	AuthorizationURL string
}

// Gateway abstracts the external payment processor. Both calls may
// fail transiently; callers treat failures as retryable and never let
// them corrupt reservation state.
type Gateway interface {
	// Initialize opens a payment session for the email and amount in
	// minor currency units (pesewas).
	Initialize(ctx context.Context, email string, amountMinor int64) (*GatewaySession, error)
	// Verify fetches the authoritative status for a transaction
	// reference.
	Verify(ctx context.Context, reference string) (string, error)
}

// PaystackClient implements Gateway against the Paystack REST API.
// Calls run through a circuit breaker so a struggling gateway trips
// fast instead of tying up booking workers.
type PaystackClient struct {
	baseURL string
	secret  string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewPaystackClient returns a client for the given API base URL and
// secret key.
func NewPaystackClient(baseURL, secret string) *PaystackClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "paystack",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})
	return &PaystackClient{
		baseURL: baseURL,
		secret:  secret,
		client:  &http.Client{Timeout: 15 * time.Second},
		breaker: cb,
	}
}

// initializeResponse mirrors POST /transaction/initialize.
type initializeResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// verifyResponse mirrors GET /transaction/verify/:reference.
type verifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"`
		Reference string `json:"reference"`
	} `json:"data"`
}

func (p *PaystackClient) Initialize(ctx context.Context, email string, amountMinor int64) (*GatewaySession, error) {
	body, err := json.Marshal(map[string]any{
		"email":  email,
		"amount": amountMinor,
	})
	if err != nil {
		return nil, err
	}
	out, err := p.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			p.baseURL+"/transaction/initialize", bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+p.secret)
		req.Header.Set("Content-Type", "application/json")

		var resp initializeResponse
		if err := p.do(req, &resp); err != nil {
			return nil, err
		}
		if !resp.Status || resp.Data.Reference == "" {
			return nil, fmt.Errorf("paystack initialize rejected: %s", resp.Message)
		}
		return &GatewaySession{
			Reference:        resp.Data.Reference,
			AuthorizationURL: resp.Data.AuthorizationURL,
		}, nil
	})
	if err != nil {
		return nil, gatewayErr(err)
	}
	return out.(*GatewaySession), nil
}

func (p *PaystackClient) Verify(ctx context.Context, reference string) (string, error) {
	out, err := p.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet,
			p.baseURL+"/transaction/verify/"+reference, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+p.secret)

		var resp verifyResponse
		if err := p.do(req, &resp); err != nil {
			return nil, err
		}
		if !resp.Status {
			return nil, fmt.Errorf("paystack verify rejected: %s", resp.Message)
		}
		return resp.Data.Status, nil
	})
	if err != nil {
		return "", gatewayErr(err)
	}
	return out.(string), nil
}

func (p *PaystackClient) do(req *http.Request, into any) error {
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("paystack returned %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(into)
}

// gatewayErr tags transport, decode and breaker-open failures as
// ErrGateway so handlers can report them distinctly from persistence
// errors.
func gatewayErr(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: gateway circuit open", ErrGateway)
	}
	return fmt.Errorf("%w: %v", ErrGateway, err)
}
