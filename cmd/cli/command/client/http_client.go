package client

// http_client.go = handles HTTP access to the bookhub API for the CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrBookNotFound is returned when the API has no record for the requested
// (book, user) pair.
var ErrBookNotFound = errors.New("book not found")

// Config carries everything a client call needs. It is passed explicitly at
// construction; there is no ambient base URL or shared module state.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// BookClient talks to the bookhub REST API
type BookClient struct {
	baseURL    string
	httpClient *http.Client
}

// Book record request/response structure, mirrors the server's wire format
type BookRecord struct {
	ID            int64   `json:"id,omitempty"`
	BookID        string  `json:"bookid"`
	UserID        int64   `json:"userid"`
	Title         string  `json:"title"`
	Subtitle      *string `json:"subtitle,omitempty"`
	Author        *string `json:"author,omitempty"`
	Genre         *string `json:"genre,omitempty"`
	Img           *string `json:"img,omitempty"`
	Desc          *string `json:"desc,omitempty"`
	PageCount     *int    `json:"pageCount,omitempty"`
	PreviewLink   *string `json:"previewLink,omitempty"`
	Language      *string `json:"language,omitempty"`
	PublishedDate *string `json:"publishedDate,omitempty"`
	DateRead      *string `json:"dateRead,omitempty"`
	Status        *string `json:"status,omitempty"`
}

// ShelfListResponse: a user's bookshelf
type ShelfListResponse struct {
	Items []BookRecord `json:"items"`
	Total int          `json:"total"`
}

// constructor for the book client
func NewBookClient(cfg Config) *BookClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &BookClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetBook fetches the stored record for a (bookID, userID) pair.
func (c *BookClient) GetBook(ctx context.Context, bookID string, userID int64) (*BookRecord, error) {
	url := fmt.Sprintf("%s/api/books/%s/users/%d", c.baseURL, bookID, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrBookNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result BookRecord
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateBook submits the full record to the upsert endpoint and returns what
// the server stored. One best-effort attempt, no retries.
func (c *BookClient) UpdateBook(ctx context.Context, record *BookRecord) (*BookRecord, error) {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/books/%s/users/%d", c.baseURL, record.BookID, record.UserID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result BookRecord
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListShelf fetches the user's bookshelf, optionally filtered by status.
func (c *BookClient) ListShelf(ctx context.Context, userID int64, status string) (*ShelfListResponse, error) {
	url := fmt.Sprintf("%s/api/users/%d/books", c.baseURL, userID)
	if status != "" {
		url += "?status=" + status
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result ShelfListResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveBook deletes the record from the user's shelf.
func (c *BookClient) RemoveBook(ctx context.Context, bookID string, userID int64) error {
	url := fmt.Sprintf("%s/api/books/%s/users/%d", c.baseURL, bookID, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrBookNotFound
	}
	if resp.StatusCode != http.StatusNoContent {
		return apiError(resp)
	}
	return nil
}

// apiError surfaces the server's error message verbatim when the body
// carries one, otherwise falls back to the HTTP status line.
func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("request failed with status: %s", resp.Status)
}
