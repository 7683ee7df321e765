package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"delivery-service/pkg/logger"
	retrierconfig "delivery-service/pkg/retrier"
	"delivery-service/pkg/retrier/backoff_adapter"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 1 * time.Second
	maxElapsedTime  = 2 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3

	maxErrorBody = 512
)

var tracer = otel.Tracer("delivery-service/internal/gateway/http")

type Config struct {
	Service string
	BaseURL string
}

type Option func(*Client)

// WithRetryConfig переопределяет интервалы повторов. ShouldRetry всегда задает клиент.
func WithRetryConfig(cfg retrierconfig.Config) Option {
	return func(c *Client) {
		c.retryConfig = cfg
	}
}

// Client JSON-клиент к соседнему сервису с повторами, метриками и трейсингом.
type Client struct {
	service     string
	baseURL     string
	httpClient  httpDoer
	log         logger.Logger
	retryConfig retrierconfig.Config
	retrier     retrier
}

func New(cfg Config, httpClient httpDoer, log logger.Logger, opts ...Option) *Client {
	c := &Client{
		service:    cfg.Service,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		log:        log.With(logger.NewField("gateway", cfg.Service)),
		retryConfig: retrierconfig.Config{
			InitialInterval: initialInterval,
			MaxInterval:     maxInterval,
			MaxElapsedTime:  maxElapsedTime,
			Randomization:   randomization,
			Multiplier:      multiplier,
			MaxRetries:      maxRetries,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.retryConfig.ShouldRetry = isRetryable
	c.retrier = backoff_adapter.New(c.retryConfig)
	return c
}

// Do выполняет запрос и декодирует JSON-ответ в out, если он не nil.
// method используется как метка метрик и имя спана.
func (c *Client) Do(ctx context.Context, method, httpMethod, path string, body, out any) error {
	ctx, span := tracer.Start(ctx, c.service+"."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", httpMethod),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", method, err)
		}
	}

	var (
		attempt uint64
		code    string
	)
	start := time.Now()

	err := c.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			GatewayRetriesTotal.WithLabelValues(c.service, method, code).Inc()
		}

		statusCode, err := c.roundTrip(ctx, httpMethod, path, payload, out)
		code = statusLabel(statusCode, err)
		if err != nil && isRetryable(err) {
			c.log.Warn("gateway request failed",
				logger.NewField("method", method),
				logger.NewField("attempt", attempt),
				logger.NewField("error", err),
			)
		}
		return err
	})

	GatewayRequestDuration.WithLabelValues(c.service, method, code).Observe(time.Since(start).Seconds())
	span.SetAttributes(attribute.Int64("retry.attempts", int64(attempt)))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (c *Client) roundTrip(ctx context.Context, httpMethod, path string, payload []byte, out any) (int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &transportError{err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// transportError сетевой сбой до получения ответа.
type transportError struct {
	err error
}

func (e *transportError) Error() string {
	return "transport: " + e.err.Error()
}

func (e *transportError) Unwrap() error {
	return e.err
}

func (e *transportError) Is(target error) bool {
	return target == ErrUnavailable
}

// isRetryable: сетевые сбои и 429/502/503/504. Истекший или отмененный контекст не повторяем.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return errors.Is(err, ErrUnavailable)
}

func statusLabel(statusCode int, err error) string {
	if statusCode != 0 {
		return strconv.Itoa(statusCode)
	}
	if err != nil {
		return "transport_error"
	}
	return "OK"
}
