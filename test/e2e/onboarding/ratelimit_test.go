package onboarding_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pulsefit/fitgate/pkg/fitsdk"
)

// TestRateLimitLoginEndpoint verifies that /v1/auth/login is rate limited.
// This endpoint has strict limits (5 req/min) to prevent access-code guessing.
func TestRateLimitLoginEndpoint(t *testing.T) {
	baseURL, cleanup := setupFitgateContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	// Make requests until we hit the rate limit (strict limit is 5 req/min).
	// The first 5 fail with unknown_code, the 6th should be rate limited.
	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, "FIT-VIP-9999")
		if i < 5 {
			assertAPIError(t, err, http.StatusBadRequest, fitsdk.ErrorCodeUnknownCode)
		} else {
			lastErr = err
		}
	}

	var apiErr *fitsdk.APIError
	require.ErrorAs(t, lastErr, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Equal(t, "rate_limit_exceeded", apiErr.Code)
}

// TestRateLimitHealthEndpoints verifies health check endpoints have lenient
// limits. Monitoring systems poll these frequently.
func TestRateLimitHealthEndpoints(t *testing.T) {
	baseURL, cleanup := setupFitgateContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)

	// Lenient limit is 100 req/min; 30 requests to each should pass.
	for i := range 30 {
		health, err := client.GetLiveness(t.Context())
		require.NoError(t, err, "liveness request %d should not be rate limited", i+1)
		require.Equal(t, "ok", health.Status)

		health, err = client.GetReadiness(t.Context())
		require.NoError(t, err, "readiness request %d should not be rate limited", i+1)
		require.Equal(t, "ok", health.Status)
	}
}

// TestRateLimitHeadersPresent verifies rate-limited responses carry the
// standard retry headers.
func TestRateLimitHeadersPresent(t *testing.T) {
	baseURL, cleanup := setupFitgateContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)
	ctx := context.Background()

	// Consume the strict login budget.
	for range 5 {
		_, err := client.Login(ctx, "FIT-VIP-9999")
		require.Error(t, err)
	}

	// The next request should be rejected; inspect the raw response headers.
	httpClient := &http.Client{Timeout: 5 * time.Second}
	req, err := http.NewRequest(http.MethodPost, baseURL+"/v1/auth/login",
		jsonBody(t, fitsdk.LoginRequest{AccessCode: "FIT-VIP-9999"}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Retry-After"))
	require.NotEmpty(t, resp.Header.Get("X-RateLimit-Limit"))
	require.NotEmpty(t, resp.Header.Get("X-RateLimit-Window"))
}

// TestRateLimitConcurrentRequests verifies limiting behaves under concurrent
// load against a lenient endpoint.
func TestRateLimitConcurrentRequests(t *testing.T) {
	baseURL, cleanup := setupFitgateContainerWithDefaultRateLimits(t)
	defer cleanup()

	httpClient := &http.Client{Timeout: 5 * time.Second}

	const numRequests = 20
	results := make(chan error, numRequests)

	for i := range numRequests {
		go func(reqNum int) {
			resp, err := httpClient.Get(baseURL + "/livez")
			if err != nil {
				results <- fmt.Errorf("request %d failed: %w", reqNum, err)
				return
			}
			defer resp.Body.Close()
			io.Copy(io.Discard, resp.Body)

			if resp.StatusCode != http.StatusOK {
				results <- fmt.Errorf("request %d got status %d", reqNum, resp.StatusCode)
				return
			}
			results <- nil
		}(i)
	}

	successCount := 0
	for range numRequests {
		if err := <-results; err == nil {
			successCount++
		} else {
			t.Logf("concurrent request error: %v", err)
		}
	}

	// Lenient limit is 100/min, so all 20 should land within budget.
	require.GreaterOrEqual(t, successCount, 15, "most concurrent requests should succeed")
}

// TestRateLimitDoesNotBlockOnboardingFlow verifies a normal five-question
// walk stays under the moderate budget.
func TestRateLimitDoesNotBlockOnboardingFlow(t *testing.T) {
	baseURL, cleanup := setupFitgateContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := fitsdk.NewClient(baseURL)

	completion := completeOnboarding(t, client, "Ana", "ana@example.com", "intermediate")
	require.Equal(t, "INT", completion.Tier)

	// A second walk from the same IP still fits the 30 req/min budget.
	completion = completeOnboarding(t, client, "Ben", "ben@example.com", "beginner")
	require.Equal(t, "BEG", completion.Tier)
}
