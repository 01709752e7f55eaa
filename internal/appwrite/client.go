// Package appwrite is a minimal typed client for the Appwrite REST API,
// covering the three services the content layer needs: Databases (document
// CRUD), Storage (file upload/delete), and Account (email sessions).
package appwrite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound reports that a document, file, or session does not exist, as
// distinct from the backend being unreachable.
var ErrNotFound = errors.New("not found")

// Client is a configured handle to one Appwrite project. Auth uses the API
// key when set, otherwise the session secret from a prior login.
type Client struct {
	endpoint string
	project  string
	apiKey   string
	session  string
	client   *http.Client
}

func New(endpoint, project string) *Client {
	return &Client{
		endpoint: endpoint,
		project:  project,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) WithKey(apiKey string) *Client {
	c.apiKey = apiKey
	return c
}

func (c *Client) WithSession(secret string) *Client {
	c.session = secret
	return c
}

func (c *Client) do(method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequest(method, c.endpoint+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Appwrite-Project", c.project)
	if c.apiKey != "" {
		req.Header.Set("X-Appwrite-Key", c.apiKey)
	} else if c.session != "" {
		req.Header.Set("X-Appwrite-Session", c.session)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return c.client.Do(req)
}

func (c *Client) doJSON(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}
	contentType := ""
	if body != nil {
		contentType = "application/json"
	}
	return c.do(method, path, bodyReader, contentType)
}

type apiError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
	Type    string `json:"type"`
}

// decodeResponse unmarshals a successful response into T, or maps an error
// response onto ErrNotFound / a message-bearing error.
func decodeResponse[T any](resp *http.Response) (T, error) {
	defer resp.Body.Close()
	var zero T

	if err := checkStatus(resp); err != nil {
		return zero, err
	}
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("decoding response: %w", err)
	}
	return out, nil
}

// drainResponse consumes a response whose body carries no useful payload
// (deletes return 204).
func drainResponse(resp *http.Response) error {
	defer resp.Body.Close()
	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		if resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", apiErr.Message, ErrNotFound)
		}
		return fmt.Errorf("API error %d: %s", resp.StatusCode, apiErr.Message)
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return fmt.Errorf("API error %d", resp.StatusCode)
}
