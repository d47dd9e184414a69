package circlo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	// Default timeout for Circlo API requests.
	defaultTimeout = 15 * time.Second
	// Maximum response body size to read from the platform.
	maxResponseBodySize = 1 << 20

	createAgentPath     = "/api/profiles/agent"
	createPostPath      = "/api/user-preferences/recommend/create-post"
	userPreferencesPath = "/api/user-preferences"
	postsByKeywordsPath = "/api/posts/by-keywords"
)

// Client is a minimal HTTP client for the Circlo platform API. It is
// intentionally thin; every call is a single attempt with no retries, and
// response bodies are handed back verbatim.
type Client struct {
	baseURL    string
	token      string
	logger     zerolog.Logger
	httpClient *http.Client
}

// New creates a new Client. It fails with ErrNoToken when no credential is
// supplied so that callers never issue unauthenticated requests.
func New(baseURL, token string, logger zerolog.Logger) (*Client, error) {
	if token == "" {
		return nil, ErrNoToken
	}
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Circlo base URL: %w", err)
	}
	return &Client{
		baseURL:    parsedURL.String(),
		token:      token,
		logger:     logger,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// CreateAgent registers an agent profile on Circlo. The Endpoint field tells
// the platform where to deliver webhook calls for this agent. Repeated calls
// may create duplicate registrations; the platform does not dedupe.
func (c *Client) CreateAgent(ctx context.Context, req CreateAgentRequest) (*Result, error) {
	return c.do(ctx, http.MethodPost, createAgentPath, nil, req)
}

// UpdateAgent modifies an existing agent profile. It tries PATCH first and
// falls back to PUT when the platform answers 404 or 405, since some Circlo
// deployments only accept full updates.
func (c *Client) UpdateAgent(ctx context.Context, agentID string, req UpdateAgentRequest) (*Result, error) {
	path := createAgentPath + "/" + url.PathEscape(agentID)
	result, err := c.do(ctx, http.MethodPatch, path, nil, req)
	if upstreamErr, ok := AsUpstreamError(err); ok {
		if upstreamErr.StatusCode == http.StatusNotFound || upstreamErr.StatusCode == http.StatusMethodNotAllowed {
			c.logger.Info().Str("agentId", agentID).Msg("PATCH not supported, retrying with PUT")
			return c.do(ctx, http.MethodPut, path, nil, req)
		}
	}
	return result, err
}

// CreatePost publishes a post as the agent.
func (c *Client) CreatePost(ctx context.Context, req CreatePostRequest) (*Result, error) {
	return c.do(ctx, http.MethodPost, createPostPath, nil, req)
}

// UserPreferences fetches the stored preferences for a single Circlo user.
func (c *Client) UserPreferences(ctx context.Context, userID string) (*Result, error) {
	return c.do(ctx, http.MethodGet, userPreferencesPath+"/user/"+url.PathEscape(userID), nil, nil)
}

// ListUserPreferences pages through all user preferences.
func (c *Client) ListUserPreferences(ctx context.Context, page, limit int) (*Result, error) {
	return c.do(ctx, http.MethodGet, userPreferencesPath, pageQuery(page, limit), nil)
}

// PostsByKeywords searches posts matching a comma separated keyword list.
func (c *Client) PostsByKeywords(ctx context.Context, keywords string, page, limit int) (*Result, error) {
	query := pageQuery(page, limit)
	query.Set("keywords", keywords)
	return c.do(ctx, http.MethodGet, postsByKeywordsPath, query, nil)
}

func pageQuery(page, limit int) url.Values {
	return url.Values{
		"page":  []string{strconv.Itoa(page)},
		"limit": []string{strconv.Itoa(limit)},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload any) (*Result, error) {
	var body io.Reader
	if payload != nil {
		reqBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal Circlo request: %w", err)
		}
		body = bytes.NewBuffer(reqBytes)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create Circlo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call Circlo: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read Circlo response body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error().Int("status", resp.StatusCode).Str("path", path).Msg("Circlo request rejected")
		return nil, &UpstreamError{StatusCode: resp.StatusCode, ContentType: contentType, Body: respBody}
	}

	return &Result{StatusCode: resp.StatusCode, ContentType: contentType, Body: respBody}, nil
}
