// Package ted is the client for the TED notice API. It builds the render and
// validate envelopes, performs one call per operation and folds every outcome,
// transport faults included, into a Result.
package ted

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"gppgateway/internal/ted/metrics"
	"gppgateway/pkg/requestcontext"
)

const (
	DefaultBaseURL = "https://api.ted.europa.eu/v3"

	// TransportFailureStatus stands in for the remote status when no response
	// was received.
	TransportFailureStatus = http.StatusInternalServerError

	UnknownErrorMessage = "Unknown error occurred"

	maxResponseBytes = 32 << 20
	tracerName       = "gppgateway/ted"
)

const (
	opRender   = "render"
	opValidate = "validate"
)

var newlines = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Client calls the TED notice endpoints. It never retries and sets no timeout
// of its own; the caller's cancellation is detached from the outbound call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

type Option func(c *Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = tracer
	}
}

// New creates a client for baseURL (DefaultBaseURL when empty) that
// authenticates with apiKey as a bearer token.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type renderEnvelope struct {
	File     string `json:"file"`
	Language string `json:"language"`
	Format   string `json:"format"`
	Summary  bool   `json:"summary"`
}

type validateEnvelope struct {
	Notice           string `json:"notice"`
	Language         string `json:"language"`
	ValidationMode   string `json:"validationMode"`
	EFormsSDKVersion string `json:"eFormsSdkVersion"`
}

type errorBody struct {
	Message *string `json:"message"`
}

// Render asks TED to render the notice as HTML.
func (c *Client) Render(ctx context.Context, xml, language string) Result {
	envelope := renderEnvelope{
		File:     encode(xml),
		Language: language,
		Format:   "HTML",
		Summary:  false,
	}
	return c.call(ctx, opRender, "/notices/render", "text/html", envelope)
}

// Validate asks TED to validate the notice against the given SDK version.
// mode is "static" or "dynamic".
func (c *Client) Validate(ctx context.Context, xml, sdkVersion, language, mode string) Result {
	envelope := validateEnvelope{
		Notice:           encode(xml),
		Language:         language,
		ValidationMode:   mode,
		EFormsSDKVersion: sdkVersion,
	}
	return c.call(ctx, opValidate, "/notices/validate", "application/xml, application/json", envelope)
}

func (c *Client) call(ctx context.Context, operation, path, accept string, envelope any) Result {
	start := time.Now()
	ctx = context.WithoutCancel(ctx)
	ctx, span := c.tracer.Start(ctx, "ted."+operation, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	result := c.do(ctx, operation, path, accept, envelope)

	span.SetAttributes(
		attribute.String("ted.operation", operation),
		attribute.Int("http.status_code", result.Status),
	)
	if !result.OK {
		span.SetStatus(codes.Error, result.Message)
	}
	if c.metrics != nil {
		c.metrics.ObserveRequest(operation, result.OK, result.Status, start)
	}

	requestID := requestcontext.RequestID(ctx)
	if result.OK {
		c.logger.InfoContext(ctx, "ted call succeeded",
			"request_id", requestID,
			"operation", operation,
			"status", result.Status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	} else {
		c.logger.WarnContext(ctx, "ted call failed",
			"request_id", requestID,
			"operation", operation,
			"status", result.Status,
			"category", result.Err.Category,
			"error", result.Err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return result
}

func (c *Client) do(ctx context.Context, operation, path, accept string, envelope any) Result {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return transportFailure(operation, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return transportFailure(operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", accept)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportFailure(operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Failure(resp.StatusCode, err.Error(), &RemoteError{
			Category:   ErrorTransport,
			Operation:  operation,
			Status:     resp.StatusCode,
			Underlying: err,
		})
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Success(string(body), resp.StatusCode)
	}

	message := remoteMessage(body)
	return Failure(resp.StatusCode, message, &RemoteError{
		Category:  ErrorService,
		Operation: operation,
		Status:    resp.StatusCode,
	})
}

func transportFailure(operation string, err error) Result {
	return Failure(TransportFailureStatus, err.Error(), &RemoteError{
		Category:   ErrorTransport,
		Operation:  operation,
		Status:     TransportFailureStatus,
		Underlying: err,
	})
}

// remoteMessage extracts the "message" field of a JSON error body, folding
// line breaks into spaces. Anything else yields UnknownErrorMessage.
func remoteMessage(body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Message == nil {
		return UnknownErrorMessage
	}
	message := strings.TrimSpace(newlines.Replace(*parsed.Message))
	if message == "" {
		return UnknownErrorMessage
	}
	return message
}

func encode(xml string) string {
	return base64.StdEncoding.EncodeToString([]byte(xml))
}
