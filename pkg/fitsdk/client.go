package fitsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a thin HTTP client for the FitGate onboarding service. It is
// deliberately stateless: session handles and bearer tokens are passed per
// call so one Client can serve many flows.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a FitGate API client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a non-2xx response decoded into the standard error body.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fitsdk: %d %s: %s", e.StatusCode, e.Code, e.Description)
}

// StartSession opens a new onboarding flow.
func (c *Client) StartSession(ctx context.Context) (StartSessionResponse, error) {
	var out StartSessionResponse
	err := c.do(ctx, http.MethodPost, "/v1/onboarding/sessions", nil, "", &out)
	return out, err
}

// CurrentQuestion fetches the question the flow is waiting on.
func (c *Client) CurrentQuestion(ctx context.Context, sessionToken string) (QuestionPayload, error) {
	var out QuestionPayload
	path := "/v1/onboarding/sessions/" + url.PathEscape(sessionToken) + "/question"
	err := c.do(ctx, http.MethodGet, path, nil, "", &out)
	return out, err
}

// SubmitAnswer submits the answer for the current question.
func (c *Client) SubmitAnswer(
	ctx context.Context,
	sessionToken string,
	req SubmitAnswerRequest,
) (SubmitAnswerResponse, error) {
	var out SubmitAnswerResponse
	path := "/v1/onboarding/sessions/" + url.PathEscape(sessionToken) + "/answers"
	err := c.do(ctx, http.MethodPost, path, req, "", &out)
	return out, err
}

// Back steps the flow back one question.
func (c *Client) Back(ctx context.Context, sessionToken string) (BackResponse, error) {
	var out BackResponse
	path := "/v1/onboarding/sessions/" + url.PathEscape(sessionToken) + "/back"
	err := c.do(ctx, http.MethodPost, path, nil, "", &out)
	return out, err
}

// Login exchanges an access code for a dashboard session token.
func (c *Client) Login(ctx context.Context, accessCode string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{AccessCode: accessCode}, "", &out)
	return out, err
}

// Entitlements lists unlocked/locked features for the session's tier.
func (c *Client) Entitlements(ctx context.Context, sessionToken string) (EntitlementsResponse, error) {
	var out EntitlementsResponse
	err := c.do(ctx, http.MethodGet, "/v1/entitlements", nil, sessionToken, &out)
	return out, err
}

// CheckFeature tests a single feature against the session's tier.
func (c *Client) CheckFeature(
	ctx context.Context,
	sessionToken, feature string,
) (FeatureCheckResponse, error) {
	var out FeatureCheckResponse
	path := "/v1/entitlements/" + url.PathEscape(feature)
	err := c.do(ctx, http.MethodGet, path, nil, sessionToken, &out)
	return out, err
}

// Profile fetches the authenticated member's profile.
func (c *Client) Profile(ctx context.Context, sessionToken string) (ProfileResponse, error) {
	var out ProfileResponse
	err := c.do(ctx, http.MethodGet, "/v1/profile", nil, sessionToken, &out)
	return out, err
}

// ListLeads fetches the marketing ledger, newest first. Requires the admin key.
func (c *Client) ListLeads(ctx context.Context, adminKey string) (ListLeadsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v1/admin/leads", nil)
	if err != nil {
		return ListLeadsResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Admin-Key", adminKey)

	var out ListLeadsResponse
	return out, c.send(req, &out)
}

// GetLiveness checks the service liveness probe.
func (c *Client) GetLiveness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/livez", nil, "", &out)
	return out, err
}

// GetReadiness checks the service readiness probe.
func (c *Client) GetReadiness(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.do(ctx, http.MethodGet, "/readyz", nil, "", &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, bearer string, out any) error {
	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}

		var body ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			apiErr.Code = body.Error
			apiErr.Description = body.ErrorDescription
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
