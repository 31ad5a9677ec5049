package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenSource supplies a bearer access token for an authenticated API call.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Exchanger trades signed assertions for short-lived access tokens using
// the jwt-bearer OAuth2 grant. Tokens are requested fresh on every call;
// submission volume is low enough that caching buys nothing.
type Exchanger struct {
	signer     *Signer
	httpClient *http.Client
	endpoint   string
	now        func() time.Time
}

// ExchangerOption configures an Exchanger.
type ExchangerOption func(*Exchanger)

// WithHTTPClient sets the HTTP client used for the token request.
func WithHTTPClient(client *http.Client) ExchangerOption {
	return func(e *Exchanger) {
		if client != nil {
			e.httpClient = client
		}
	}
}

// WithEndpoint overrides the token endpoint. Intended for tests.
func WithEndpoint(endpoint string) ExchangerOption {
	return func(e *Exchanger) {
		if endpoint != "" {
			e.endpoint = endpoint
		}
	}
}

// WithClock overrides the time source used for assertion validity windows.
func WithClock(now func() time.Time) ExchangerOption {
	return func(e *Exchanger) {
		if now != nil {
			e.now = now
		}
	}
}

// NewExchanger returns an Exchanger over the given signer.
func NewExchanger(signer *Signer, opts ...ExchangerOption) *Exchanger {
	e := &Exchanger{
		signer:     signer,
		httpClient: http.DefaultClient,
		endpoint:   TokenEndpoint,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Token signs a fresh assertion and exchanges it for a bearer access token.
// A non-2xx response fails with ErrTokenExchange carrying the response body.
func (e *Exchanger) Token(ctx context.Context) (string, error) {
	assertion, err := e.signer.Assertion(e.now())
	if err != nil {
		return "", err
	}

	form := url.Values{
		"grant_type": {"urn:ietf:params:oauth:grant-type:jwt-bearer"},
		"assertion":  {assertion},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenExchange, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrTokenExchange, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s", ErrTokenExchange, string(body))
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", ErrTokenExchange, err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%w: response contained no access token", ErrTokenExchange)
	}

	return token.AccessToken, nil
}
