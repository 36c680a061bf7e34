package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"quoterelay/internal/models"
)

const (
	DefaultHubSpotBaseURL = "https://api.hubapi.com"
	DefaultHubSpotTimeout = 30 * time.Second
)

// APIError is a non-2xx answer from HubSpot.
type APIError struct {
	StatusCode    int
	Category      string
	Message       string
	CorrelationID string
}

func (e *APIError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("hubspot returned %d (%s): %s", e.StatusCode, e.Category, e.Message)
	}
	return fmt.Sprintf("hubspot returned %d: %s", e.StatusCode, e.Message)
}

// HubSpotClient talks to the HubSpot CRM REST API with a private app token.
type HubSpotClient struct {
	Token   string
	BaseURL string
	client  *http.Client
}

func NewHubSpotClient(token, baseURL string, timeout time.Duration) *HubSpotClient {
	if baseURL == "" {
		baseURL = DefaultHubSpotBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultHubSpotTimeout
	}
	return &HubSpotClient{
		Token:   token,
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// SearchObjects runs POST /crm/v3/objects/{objectType}/search.
func (c *HubSpotClient) SearchObjects(ctx context.Context, objectType string, req models.SearchRequest) (*models.SearchResult, error) {
	var out models.SearchResult
	path := "/crm/v3/objects/" + url.PathEscape(objectType) + "/search"
	if _, err := c.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, fmt.Errorf("search %s: %w", objectType, err)
	}
	return &out, nil
}

// GetAssociations returns the first page of v4 associations from one record
// to records of toType.
func (c *HubSpotClient) GetAssociations(ctx context.Context, fromType, fromID, toType string) (*models.AssociationPage, error) {
	var out models.AssociationPage
	path := fmt.Sprintf("/crm/v4/objects/%s/%s/associations/%s",
		url.PathEscape(fromType), url.PathEscape(fromID), url.PathEscape(toType))
	if _, err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("associations %s/%s -> %s: %w", fromType, fromID, toType, err)
	}
	return &out, nil
}

// GetObject fetches one record by id with the requested properties.
func (c *HubSpotClient) GetObject(ctx context.Context, objectType, id string, properties []string) (*models.SimpleObject, error) {
	var out models.SimpleObject
	path := "/crm/v3/objects/" + url.PathEscape(objectType) + "/" + url.PathEscape(id)
	q := url.Values{}
	if len(properties) > 0 {
		q.Set("properties", strings.Join(properties, ","))
	}
	q.Set("archived", "false")
	if _, err := c.do(ctx, http.MethodGet, path, q, nil, &out); err != nil {
		return nil, fmt.Errorf("get %s %s: %w", objectType, id, err)
	}
	return &out, nil
}

// UpdateObject patches properties on a record and returns HubSpot's raw answer.
func (c *HubSpotClient) UpdateObject(ctx context.Context, objectType, id string, properties map[string]string) (json.RawMessage, error) {
	path := "/crm/v3/objects/" + url.PathEscape(objectType) + "/" + url.PathEscape(id)
	body := map[string]any{"properties": properties}
	raw, err := c.do(ctx, http.MethodPatch, path, nil, body, nil)
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", objectType, id, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return json.RawMessage(raw), nil
}

func (c *HubSpotClient) do(ctx context.Context, method, path string, query url.Values, in, out any) ([]byte, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			log.Printf("[hubspot] unexpected body for %s %s: %.200s", method, path, body)
			return nil, fmt.Errorf("json unmarshal: %w", err)
		}
	}
	return body, nil
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var payload struct {
		Message       string `json:"message"`
		Category      string `json:"category"`
		CorrelationID string `json:"correlationId"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
		apiErr.Category = payload.Category
		apiErr.CorrelationID = payload.CorrelationID
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(body))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
