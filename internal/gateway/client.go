// Package gateway is the client for the hosted Entity Gateway, the external
// service that owns all hospital records. It exposes generic CRUD per entity
// collection plus a blob upload used for lab report attachments. Calls are
// never retried here; recovery is user-initiated.
package gateway

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
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// ErrNotFound is returned when the Gateway reports a missing record.
var ErrNotFound = errors.New("record not found")

// StatusError wraps a non-2xx Gateway response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.Code, e.Body)
}

// Client talks JSON over HTTP to the Entity Gateway.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  zerolog.Logger
}

func New(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "gateway").Logger(),
	}
}

// ListResult is the Gateway's paginated list envelope.
type ListResult struct {
	Items []json.RawMessage `json:"data"`
	Total int               `json:"total"`
}

// UploadResult is the Gateway's blob upload response.
type UploadResult struct {
	FileURL  string `json:"file_url"`
	FileName string `json:"file_name"`
}

// List fetches a page of records from an entity collection. filter may be nil.
func (c *Client) List(ctx context.Context, entity string, filter url.Values, limit, offset int) (*ListResult, error) {
	q := url.Values{}
	for k, vs := range filter {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var result ListResult
	if err := c.do(ctx, http.MethodGet, "/entities/"+entity+"?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get fetches a single record by id.
func (c *Client) Get(ctx context.Context, entity, id string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/entities/"+entity+"/"+id, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Create persists a new record and returns it with server-assigned fields
// (id, created_date) filled in.
func (c *Client) Create(ctx context.Context, entity string, payload interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/entities/"+entity, payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Update replaces a record and returns the persisted version.
func (c *Client) Update(ctx context.Context, entity, id string, payload interface{}) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/entities/"+entity+"/"+id, payload, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Delete removes a record.
func (c *Client) Delete(ctx context.Context, entity, id string) error {
	return c.do(ctx, http.MethodDelete, "/entities/"+entity+"/"+id, nil, nil)
}

// Upload streams a file to the Gateway's blob service.
func (c *Client) Upload(ctx context.Context, fileName, contentType string, r io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return nil, fmt.Errorf("create multipart part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("copy file body: %w", err)
	}
	if contentType != "" {
		_ = mw.WriteField("content_type", contentType)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", fileName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(resp)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return &result, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", method).Str("path", path).Msg("gateway request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("gateway request")

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &StatusError{Code: resp.StatusCode, Body: string(body)}
}
