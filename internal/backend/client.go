// Package backend is the HTTP client for the career-assistant
// backend. The backend is an external collaborator: this package
// carries requests and decodes replies, nothing more.
package backend

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"careerpilot/internal/config"
	"careerpilot/internal/errors"
	"careerpilot/internal/types"
)

// Client talks to the career-assistant backend over HTTP.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	uploadClient *http.Client
	maxRetries   int
	breaker      *APICircuitBreaker
	logger       *errors.Logger
}

// NewClient builds a backend client from configuration. The transport
// is otelhttp-instrumented so every call produces a client span.
func NewClient(cfg *config.BackendConfig, logger *errors.Logger) (*Client, error) {
	tlsConfig, err := cfg.TLS.BuildClientTLSConfig()
	if err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			"Failed to build backend TLS configuration", err)
	}

	base := http.DefaultTransport
	if tlsConfig != nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfig
		base = transport
	}
	instrumented := otelhttp.NewTransport(base)

	return &Client{
		baseURL:      cfg.BaseURL,
		httpClient:   &http.Client{Timeout: cfg.Timeout, Transport: instrumented},
		uploadClient: &http.Client{Timeout: cfg.UploadTimeout, Transport: instrumented},
		maxRetries:   cfg.MaxRetries,
		breaker:      NewAPICircuitBreaker(&cfg.CircuitBreaker, logger),
		logger:       logger,
	}, nil
}

// statusError marks a non-2xx reply so retry logic can inspect the code.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.code, e.body)
}

// Chat sends a chat message with the current preferences and returns
// the assistant's reply text.
func (c *Client) Chat(ctx context.Context, message string, prefs types.Preferences) (string, error) {
	tracer := otel.Tracer("careerpilot.backend")
	ctx, span := tracer.Start(ctx, "backend.chat")
	defer span.End()
	span.SetAttributes(attribute.Int("chat.message_chars", len(message)))

	body := types.ChatRequest{Message: message, Preferences: &prefs}
	raw, err := c.call(ctx, http.MethodPost, "/api/chat", nil, body)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	var reply types.ChatResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		span.RecordError(err)
		return "", errors.NewBackendError(errors.ErrCodeBackendDecode,
			"Failed to decode chat response", err)
	}
	return reply.Response, nil
}

// Recommendations fetches the recommendation payload for the given
// preferences. Interests are sent as a repeated query parameter, one
// per entry.
func (c *Client) Recommendations(ctx context.Context, prefs types.Preferences) (types.RecommendationSet, error) {
	tracer := otel.Tracer("careerpilot.backend")
	ctx, span := tracer.Start(ctx, "backend.recommendations")
	defer span.End()
	span.SetAttributes(
		attribute.String("prefs.goal", prefs.Goal),
		attribute.Int("prefs.interests", len(prefs.Interests)),
	)

	query := url.Values{}
	query.Set("career_level", prefs.CareerLevel)
	query.Set("goal", prefs.Goal)
	for _, interest := range prefs.Interests {
		query.Add("interests", interest)
	}

	raw, err := c.call(ctx, http.MethodGet, "/api/recommendations", query, nil)
	if err != nil {
		span.RecordError(err)
		return types.RecommendationSet{}, err
	}

	var reply types.RecommendationsResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		span.RecordError(err)
		return types.RecommendationSet{}, errors.NewBackendError(errors.ErrCodeBackendDecode,
			"Failed to decode recommendations response", err)
	}
	if reply.Status != types.StatusSuccess {
		return types.RecommendationSet{}, errors.NewBackendError(errors.ErrCodeBackendFailed,
			fmt.Sprintf("Recommendations request returned status %q", reply.Status), nil)
	}
	return reply.Recommendations, nil
}

// ConnectLinkedIn asks the backend to analyze a LinkedIn profile URL.
func (c *Client) ConnectLinkedIn(ctx context.Context, linkedinURL string) (types.ConnectLinkedInResponse, error) {
	tracer := otel.Tracer("careerpilot.backend")
	ctx, span := tracer.Start(ctx, "backend.connect_linkedin")
	defer span.End()

	body := types.ConnectLinkedInRequest{LinkedInURL: linkedinURL}
	raw, err := c.call(ctx, http.MethodPost, "/api/connect-linkedin", nil, body)
	if err != nil {
		span.RecordError(err)
		return types.ConnectLinkedInResponse{}, err
	}

	var reply types.ConnectLinkedInResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		span.RecordError(err)
		return types.ConnectLinkedInResponse{}, errors.NewBackendError(errors.ErrCodeBackendDecode,
			"Failed to decode connect-linkedin response", err)
	}
	if reply.Status != types.StatusSuccess {
		return types.ConnectLinkedInResponse{}, errors.NewBackendError(errors.ErrCodeBackendFailed,
			fmt.Sprintf("Connect request returned status %q", reply.Status), nil)
	}
	return reply, nil
}

// UploadCV posts the CV file as multipart form data under the
// cv_file field and returns the backend's analysis. Uploads are not
// retried: the body is consumed by the first attempt and the backend
// may have already accepted the file.
func (c *Client) UploadCV(ctx context.Context, path string) (types.UploadCVResponse, error) {
	tracer := otel.Tracer("careerpilot.backend")
	ctx, span := tracer.Start(ctx, "backend.upload_cv")
	defer span.End()

	file, err := os.Open(path)
	if err != nil {
		span.RecordError(err)
		return types.UploadCVResponse{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot open CV file: %s", path), err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && c.logger != nil {
			c.logger.Warn("Failed to close CV file", "path", path, "error", closeErr)
		}
	}()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("cv_file", filepath.Base(path))
	if err != nil {
		return types.UploadCVResponse{}, errors.NewInternalError("MULTIPART_BUILD_FAILED",
			"Failed to build multipart body", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return types.UploadCVResponse{}, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Failed to read CV file: %s", path), err)
	}
	if err := writer.Close(); err != nil {
		return types.UploadCVResponse{}, errors.NewInternalError("MULTIPART_BUILD_FAILED",
			"Failed to finalize multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-cv", &buf)
	if err != nil {
		return types.UploadCVResponse{}, errors.NewInternalError("REQUEST_BUILD_FAILED",
			"Failed to build upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.doOnce(c.uploadClient, req)
	})
	if err != nil {
		span.RecordError(err)
		return types.UploadCVResponse{}, wrapTransportError(err)
	}

	var reply types.UploadCVResponse
	if err := json.Unmarshal(raw, &reply); err != nil {
		span.RecordError(err)
		return types.UploadCVResponse{}, errors.NewBackendError(errors.ErrCodeBackendDecode,
			"Failed to decode upload-cv response", err)
	}
	if reply.Status != types.StatusSuccess {
		return types.UploadCVResponse{}, errors.NewBackendError(errors.ErrCodeBackendFailed,
			fmt.Sprintf("CV upload returned status %q", reply.Status), nil)
	}
	return reply, nil
}

// Healthy reports whether the circuit breaker is closed.
func (c *Client) Healthy() bool {
	return c.breaker.IsHealthy()
}

// call executes a JSON request with circuit breaker protection and
// retry, returning the raw response body.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.executeWithRetry(ctx, method, path, query, body)
	})
	if err != nil {
		return nil, wrapTransportError(err)
	}
	return raw, nil
}

// executeWithRetry retries the request with exponential backoff and
// jitter for retryable failures.
func (c *Client) executeWithRetry(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			if c.logger != nil {
				c.logger.Warn("Retrying backend request",
					"path", path,
					"attempt", attempt,
					"max_retries", c.maxRetries,
					"error", lastErr.Error())
			}

			// Exponential backoff with jitter to avoid thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, 15*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		raw, err := c.doJSON(ctx, method, path, query, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if !isRetryableError(err) {
			break
		}
	}

	return nil, lastErr
}

// doJSON builds and executes a single JSON request attempt.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshalling request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.doOnce(c.httpClient, req)
}

// doOnce executes one request and reads the full body, converting
// non-2xx replies into statusError.
func (c *Client) doOnce(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && c.logger != nil {
			c.logger.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, body: string(raw)}
	}
	return raw, nil
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if goerrors.As(err, &netErr) {
		return true
	}

	var stErr *statusError
	if goerrors.As(err, &stErr) {
		switch stErr.code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// wrapTransportError normalizes breaker and transport failures into
// AppErrors.
func wrapTransportError(err error) error {
	var stErr *statusError
	if goerrors.As(err, &stErr) {
		return errors.NewBackendError(errors.ErrCodeBackendStatus,
			fmt.Sprintf("Backend rejected the request with status %d", stErr.code), err)
	}

	var netErr net.Error
	if goerrors.As(err, &netErr) && netErr.Timeout() {
		return errors.NewNetworkError(errors.ErrCodeNetworkTimeout,
			"Backend request timed out", err)
	}

	if goerrors.Is(err, gobreaker.ErrOpenState) || goerrors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.NewBackendError(errors.ErrCodeCircuitOpen,
			"Backend circuit breaker is open", err)
	}

	return errors.NewNetworkError(errors.ErrCodeBackendFailed,
		"Backend request failed", err)
}
