package onboarding_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pulsefit/fitgate/pkg/cryptox"
	"github.com/pulsefit/fitgate/pkg/fitsdk"
)

/*
 * Common constants and helper functions for onboarding service end-to-end
 * tests. This includes container setup, flow helpers, and assertions.
 */

const (
	testImageName = "fitgate-test:latest"

	adminKey = "test-admin-key-12345"
)

// adminKeyHash is computed once in TestMain so every container gets the
// same argon2id hash for the shared test admin key.
var adminKeyHash string

// TestMain manages the test lifecycle, builds the Docker image once before
// all tests and cleans it up after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building FitGate Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	hash, err := cryptox.HashSecret(adminKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to hash admin key: %v\n", err)
		os.Exit(1)
	}
	adminKeyHash = hash

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up FitGate Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image if it doesn't exist.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/fitgate/Dockerfile",
		"../../../")
	cmd.Dir = "." // Ensure we're in the test directory
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupFitgateContainer starts the service in a container and returns the
// base URL. Rate limits are relaxed so rapid test requests don't trip them.
func setupFitgateContainer(t *testing.T) (string, func()) {
	t.Helper()

	env := map[string]string{
		// Relaxed limits; the dedicated rate-limit test uses defaults.
		"RATELIMIT_STRICT_REQUESTS":   "1000",
		"RATELIMIT_STRICT_WINDOW_SEC": "60",
		"RATELIMIT_STRICT_BURST":      "1000",
		"RATELIMIT_MODERATE_REQUESTS": "1000",
		"RATELIMIT_MODERATE_BURST":    "1000",
		"RATELIMIT_LENIENT_REQUESTS":  "1000",
		"RATELIMIT_LENIENT_BURST":     "1000",
	}
	return startContainer(t, env)
}

// setupFitgateContainerWithDefaultRateLimits starts the service with
// production rate limits, specifically for testing that limiting works.
func setupFitgateContainerWithDefaultRateLimits(t *testing.T) (string, func()) {
	t.Helper()
	return startContainer(t, nil)
}

func startContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"FITGATE_ISSUER":         "fitgate-e2e",
		"FITGATE_DATABASE_FILE":  "/tmp/fitgate.db",
		"FITGATE_ADMIN_KEY_HASH": adminKeyHash,
		"ENV":                    "test",
		"LOG_LEVEL":              "info",
		"LOG_FORMAT":             "json",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// completeOnboarding walks a full intake flow with the given fitness-level
// answer and returns the completion payload.
func completeOnboarding(
	t *testing.T,
	client *fitsdk.Client,
	name, email, level string,
) *fitsdk.CompletionPayload {
	t.Helper()
	ctx := context.Background()

	start, err := client.StartSession(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, start.SessionToken)
	require.Equal(t, "name", start.Question.Key)

	answers := map[string]fitsdk.SubmitAnswerRequest{
		"name":          {Value: name},
		"email":         {Value: email},
		"fitness-level": {Value: level},
		"goals":         {Values: []string{"build-muscle"}},
		"activities":    {Values: []string{"gym", "running"}},
	}

	question := start.Question
	for {
		resp, err := client.SubmitAnswer(ctx, start.SessionToken, answers[question.Key])
		require.NoError(t, err)

		if resp.Completion != nil {
			return resp.Completion
		}
		require.NotNil(t, resp.Question, "expected another question after %q", question.Key)
		question = *resp.Question
	}
}

// jsonBody marshals v for use as a raw HTTP request body.
func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// assertAPIError verifies err is an *fitsdk.APIError with the given status
// and error code.
func assertAPIError(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *fitsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
}

// assertAPIStatus is assertAPIError for responses with empty bodies (the
// bearer and admin-key middlewares only set a status).
func assertAPIStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)

	var apiErr *fitsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
}
