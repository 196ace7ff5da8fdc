// Package remote talks to the question bank that finished questions are
// forwarded to.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lshigami/QuizDraft/internal/model"
)

const DefaultTimeout = 10 * time.Second

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// ListDomains fetches GET /domains.
func (c *Client) ListDomains(ctx context.Context) ([]model.Domain, error) {
	var domains []model.Domain
	if err := c.do(ctx, http.MethodGet, "/domains", nil, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// ListSubjects fetches GET /domains/{domainID}/subjects.
func (c *Client) ListSubjects(ctx context.Context, domainID string) ([]model.Subject, error) {
	var subjects []model.Subject
	path := "/domains/" + url.PathEscape(domainID) + "/subjects"
	if err := c.do(ctx, http.MethodGet, path, nil, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

// CreateQuestion posts q to /domains/{domainID}/questions/add.
func (c *Client) CreateQuestion(ctx context.Context, domainID string, q model.Question) error {
	body, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("encode question: %w", err)
	}
	path := "/domains/" + url.PathEscape(domainID) + "/questions/add"
	return c.do(ctx, http.MethodPost, path, body, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(snippet)}
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s %s data: %w", method, path, err)
	}
	return nil
}
