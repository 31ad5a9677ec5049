package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/beautyflow/leadfunnel/pkg/googleauth"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com"

	// appendRange is the fixed worksheet range rows are appended to.
	appendRange = "Sheet1!A:F"
)

// Client appends rows to a single spreadsheet through the Sheets REST API,
// authenticating with a fresh jwt-bearer token per call. The credential is
// parsed per request so a misconfigured key surfaces as an append failure,
// never as a startup crash.
type Client struct {
	cfg        Config
	httpClient *http.Client
	baseURL    string
	tokens     googleauth.TokenSource
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the Sheets API base URL. Intended for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithTokenSource overrides the token source. Intended for tests; by
// default each append signs and exchanges with the configured credential.
func WithTokenSource(tokens googleauth.TokenSource) Option {
	return func(c *Client) {
		if tokens != nil {
			c.tokens = tokens
		}
	}
}

// NewClient returns a Client for the given credentials.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: http.DefaultClient,
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether the client has a complete credential set.
func (c *Client) Configured() bool {
	return c.cfg.Configured()
}

// Append appends one row to the fixed worksheet range with USER_ENTERED
// value interpretation. Returns ErrNotConfigured when credentials are
// incomplete; the caller treats that as a skip, not a failure.
func (c *Client) Append(ctx context.Context, row []string) error {
	if !c.cfg.Configured() {
		return ErrNotConfigured
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(map[string][][]string{
		"values": {row},
	})
	if err != nil {
		return fmt.Errorf("%w: encoding row: %v", ErrAppendFailed, err)
	}

	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.baseURL, url.PathEscape(c.cfg.SheetID), url.PathEscape(appendRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAppendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", ErrAppendFailed, string(body))
	}

	return nil
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	if c.tokens != nil {
		return c.tokens.Token(ctx)
	}

	signer, err := googleauth.NewSigner(c.cfg.ServiceAccountEmail, c.cfg.PrivateKey)
	if err != nil {
		return "", err
	}
	exchanger := googleauth.NewExchanger(signer, googleauth.WithHTTPClient(c.httpClient))
	return exchanger.Token(ctx)
}
