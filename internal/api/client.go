// Package api implements the outbound HTTP client shared by every resource
// client of the console. It speaks the backend's JSON envelope contract,
// attaches session tokens and request IDs, and maps transport failures onto
// the common error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/hei-admin-console/pkg/config"
	appErrors "github.com/noah-isme/hei-admin-console/pkg/errors"
	"github.com/noah-isme/hei-admin-console/pkg/metrics"
)

// TokenSource supplies the bearer token for outbound requests. The session
// provider backing it is an external collaborator; the token is opaque here.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns a fixed token, useful for tests and scripted use.
type StaticTokenSource string

// Token implements TokenSource.
func (s StaticTokenSource) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

// Client is the HTTP client for the administrative API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	logger     *zap.Logger
	recorder   *metrics.Recorder
}

// New creates an API client from configuration.
func New(cfg *config.Config, tokens TokenSource, logger *zap.Logger, recorder *metrics.Recorder) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.API.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		tokens:     tokens,
		logger:     logger.With(zap.String("component", "api_client")),
		recorder:   recorder,
	}
}

// Get performs a GET request and returns the raw envelope body.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

// Post performs a POST request with a JSON payload.
func (c *Client) Post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, "application/json")
}

// Put performs a PUT request with a JSON payload.
func (c *Client) Put(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := encodePayload(payload)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, http.MethodPut, path, nil, body, "application/json")
}

// Delete performs a DELETE request. The body is always empty.
func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "")
}

// UploadField names a metadata form field accompanying a file upload.
type UploadField struct {
	Name  string
	Value string
}

// Upload performs a multipart/form-data POST carrying file bytes plus
// metadata fields.
func (c *Client) Upload(ctx context.Context, path, fileName string, file io.Reader, fields []UploadField) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "failed to build upload form")
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "failed to read upload file")
	}
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		if err := writer.WriteField(f.Name, f.Value); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "failed to build upload form")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "failed to build upload form")
	}

	return c.do(ctx, http.MethodPost, path, nil, &buf, writer.FormDataContentType())
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	reqURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	if body == nil {
		body = http.NoBody
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "failed to build request")
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, "failed to obtain session token")
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	resource := resourceLabel(path)

	if err != nil {
		c.recorder.ObserveRequest(method, resource, 0, duration)
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, appErrors.Wrap(err, appErrors.ErrCancelled.Code, 0, appErrors.ErrCancelled.Message)
		}
		c.logger.Warn("request_failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, appErrors.ErrNetwork.Message)
	}
	defer resp.Body.Close()

	c.recorder.ObserveRequest(method, resource, resp.StatusCode, duration)

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNetwork.Code, appErrors.ErrNetwork.Status, appErrors.ErrNetwork.Message)
	}

	c.logger.Debug("request_completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration),
		zap.String("request_id", requestID),
	)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, rejectionError(resp.StatusCode, payload)
	}

	return payload, nil
}

// rejectionError maps a non-2xx response onto a server rejection, keeping
// the server-provided message verbatim when the body carries an envelope.
func rejectionError(status int, body []byte) error {
	message := ""
	var env struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err == nil {
		message = env.Error
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}
	e := appErrors.Clone(appErrors.ErrServer, message)
	e.Status = status
	return e
}

func encodePayload(payload any) (io.Reader, error) {
	if payload == nil {
		return nil, nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "failed to encode payload")
	}
	return bytes.NewReader(data), nil
}

func resourceLabel(path string) string {
	trimmed := strings.TrimLeft(path, "/")
	if idx := strings.IndexByte(trimmed, '/'); idx > 0 {
		return trimmed[:idx]
	}
	return trimmed
}
