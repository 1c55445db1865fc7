// Package graphql is the single transport to the backend: it POSTs one
// {query, variables} envelope and normalizes the reply into a Result.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"schooladmin/internal/domain"
)

// Request is the envelope sent to the backend.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

// Result is the normalized reply. Data is the zero value when Status is false.
type Result[T any] struct {
	Status   bool
	Message  string
	Data     T
	NotFound bool
}

// Client sends requests to one endpoint. It performs no retries and sets no
// timeout of its own; the caller's context bounds each call.
type Client struct {
	Endpoint   string
	Token      string
	HTTPClient *http.Client
	Logger     *logrus.Logger
}

func NewClient(endpoint, token string, logger *logrus.Logger) *Client {
	return &Client{
		Endpoint:   strings.TrimSpace(endpoint),
		Token:      strings.TrimSpace(token),
		HTTPClient: &http.Client{},
		Logger:     logger,
	}
}

type gqlError struct {
	Message string `json:"message"`
	Path    []any  `json:"path,omitempty"`
}

type envelope struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors []gqlError                 `json:"errors"`
}

// Execute sends req and decodes data.<field> into T. Backend-reported errors
// come back as Status=false with a nil error; only transport failures
// (network, non-2xx, undecodable body) return an error.
func Execute[T any](ctx context.Context, c *Client, req Request, field string) (Result[T], error) {
	var out Result[T]
	op := req.OperationName
	if op == "" {
		op = field
	}
	start := time.Now()

	raw, err := c.post(ctx, req)
	if err != nil {
		observe(op, outcomeTransport, start)
		return out, domain.TransportError{Operation: op, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		observe(op, outcomeTransport, start)
		return out, domain.TransportError{Operation: op, Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(env.Errors) > 0 {
		msgs := make([]string, 0, len(env.Errors))
		for _, e := range env.Errors {
			if m := strings.TrimSpace(e.Message); m != "" {
				msgs = append(msgs, m)
			}
		}
		out.Message = strings.Join(msgs, "; ")
		if out.Message == "" {
			out.Message = "request failed"
		}
		observe(op, outcomeApplication, start)
		c.log().WithFields(logrus.Fields{"operation": op, "message": out.Message}).Warn("graphql application error")
		return out, nil
	}

	payload, ok := env.Data[field]
	if !ok || len(payload) == 0 || string(bytes.TrimSpace(payload)) == "null" {
		out.Message = field + " returned no data"
		out.NotFound = true
		observe(op, outcomeNotFound, start)
		return out, nil
	}

	if err := json.Unmarshal(payload, &out.Data); err != nil {
		observe(op, outcomeTransport, start)
		return Result[T]{}, domain.TransportError{Operation: op, Err: fmt.Errorf("decode %s: %w", field, err)}
	}
	out.Status = true
	out.Message = "ok"
	observe(op, outcomeOK, start)
	c.log().WithFields(logrus.Fields{"operation": op, "latency_ms": time.Since(start).Milliseconds()}).Debug("graphql ok")
	return out, nil
}

func (c *Client) post(ctx context.Context, req Request) ([]byte, error) {
	if c == nil || c.Endpoint == "" {
		return nil, fmt.Errorf("graphql endpoint not configured")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.Token)
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	// GraphQL servers may answer 4xx with a well-formed errors array.
	if resp.StatusCode >= 300 && !looksLikeErrors(raw) {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return raw, nil
}

func looksLikeErrors(raw []byte) bool {
	var probe struct {
		Errors []gqlError `json:"errors"`
	}
	return json.Unmarshal(raw, &probe) == nil && len(probe.Errors) > 0
}

func (c *Client) log() *logrus.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logrus.StandardLogger()
}
