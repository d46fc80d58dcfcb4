// Package gateway is the HTTP client for the healthcare API gateway.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

const maxResponseBytes = 10 << 20

// Operation names a logical gateway call. It labels logs and metrics.
type Operation string

const (
	OpListAppointmentsByDoctor Operation = "list_appointments_by_doctor"
	OpListAppointments         Operation = "list_appointments"
	OpCreateAppointment        Operation = "create_appointment"
	OpListInvoicesByPatient    Operation = "list_invoices_by_patient"
	OpListDoctors              Operation = "list_doctors"
	OpCreateDoctor             Operation = "create_doctor"
	OpCreateUser               Operation = "create_user"
)

// MetricsRecorder receives one observation per gateway call.
type MetricsRecorder interface {
	ObserveGateway(operation, outcome string, seconds float64)
}

// Client is an HTTP client for the API gateway. It never retries and never
// caches: every call is exactly one HTTP request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        *logrus.Logger
	metrics    MetricsRecorder
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets a custom logger.
func WithLogger(log *logrus.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

func WithMetrics(m MetricsRecorder) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTimeout bounds every call, including reading the response body.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a gateway client. baseURL is the gateway root, e.g.
// "http://localhost:8080", without a trailing slash.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}

	return c
}

// PathSegment escapes an opaque id for use as a single path segment.
func PathSegment(id string) string {
	return url.PathEscape(id)
}

// Do sends body (if non-nil) as JSON and decodes a 2xx response into out (if
// non-nil). An empty 2xx body leaves out untouched.
func (c *Client) Do(ctx context.Context, op Operation, method, path string, body, out any) error {
	start := time.Now()
	err := c.do(ctx, op, method, path, body, out)
	elapsed := time.Since(start)

	outcome := outcomeOf(err)
	if c.metrics != nil {
		c.metrics.ObserveGateway(string(op), outcome, elapsed.Seconds())
	}

	entry := c.log.WithFields(logrus.Fields{
		"operation":   op,
		"method":      method,
		"path":        path,
		"outcome":     outcome,
		"duration_ms": elapsed.Milliseconds(),
	})
	if err != nil {
		entry.WithError(err).Warn("gateway call failed")
	} else {
		entry.Debug("gateway call completed")
	}

	return err
}

func (c *Client) do(ctx context.Context, op Operation, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("gateway: %s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("gateway: %s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("gateway: %s: %w: %w", op, ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{Operation: op, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("gateway: %s: read response: %w: %w", op, ErrNetwork, err)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("gateway: %s: %w: %w", op, ErrDecode, err)
	}
	return nil
}
