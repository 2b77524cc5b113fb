package bypathsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError is a structured error returned by the service.
type APIError struct {
	Code        string
	Description string
	Status      int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bypath: %s (%d): %s", e.Code, e.Status, e.Description)
}

// Client calls the Bypath service on behalf of one registered API client.
type Client struct {
	BaseURL    string
	ClientKey  string
	Secret     string
	HTTPClient *http.Client
}

// New returns a Client for the given service base URL and credential pair.
func New(baseURL, clientKey, secret string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ClientKey:  clientKey,
		Secret:     secret,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Token fetches (or mints) the bearer token for userID under this client by
// posting a signed request to /v1/tokens.
func (c *Client) Token(ctx context.Context, userID string) (string, error) {
	params := map[string]string{
		ParamClientKey: c.ClientKey,
		"user_id":      userID,
	}
	params[ParamToken] = SignParams(params, c.Secret)

	var out TokenResponse
	if err := c.postForm(ctx, "/v1/tokens", params, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Verify submits a signed parameter set to /v1/verify. A nil error means the
// signature passed; verification failures come back as *APIError.
func (c *Client) Verify(ctx context.Context, params map[string]string) error {
	signed := make(map[string]string, len(params)+2)
	for k, v := range params {
		signed[k] = v
	}
	signed[ParamClientKey] = c.ClientKey
	signed[ParamToken] = SignParams(signed, c.Secret)

	var out VerifyResponse
	return c.postForm(ctx, "/v1/verify", signed, &out)
}

// WhoAmI resolves a bearer token to its owning user via GET /v1/whoami.
func (c *Client) WhoAmI(ctx context.Context, token string) (WhoAmIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/whoami", nil)
	if err != nil {
		return WhoAmIResponse{}, err
	}
	req.Header.Set("Authorization", "Bypath "+token)

	var out WhoAmIResponse
	if err := c.do(req, &out); err != nil {
		return WhoAmIResponse{}, err
	}
	return out, nil
}

func (c *Client) postForm(ctx context.Context, path string, params map[string]string, out any) error {
	form := make(url.Values, len(params))
	for k, v := range params {
		form.Set(k, v)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return &APIError{Code: "unexpected_response", Status: resp.StatusCode}
		}
		return &APIError{
			Code:        apiErr.Error,
			Description: apiErr.ErrorDescription,
			Status:      resp.StatusCode,
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
