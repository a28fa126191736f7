// Package copy_client calls the external text-generation service that writes
// marketing copy for matches and players. Callers must treat every response
// as optional: on any failure the core falls back to a fixed string and no
// state mutation ever waits on this service.
package copy_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mcdev12/clubhouse/go/internal/models"
)

// CopyClient is an HTTP client for the copywriter service
type CopyClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewCopyClient creates a client for the copywriter service
func NewCopyClient(baseURL, apiKey string) *CopyClient {
	return &CopyClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type copyResponse struct {
	Text string `json:"text"`
}

// MatchPreview asks the service for match-day promotional copy
func (c *CopyClient) MatchPreview(ctx context.Context, m models.Match) (string, error) {
	payload := map[string]string{
		"opponent":    m.Opponent,
		"kickoff_at":  m.KickoffAt.Format(time.RFC3339),
		"competition": string(m.Competition),
		"department":  string(m.Department),
		"discipline":  string(m.Discipline),
	}
	if m.Venue != nil {
		payload["venue"] = *m.Venue
	}
	return c.generate(ctx, "/v1/copy/match-preview", payload)
}

// PlayerBio asks the service for a short player biography
func (c *CopyClient) PlayerBio(ctx context.Context, p models.Player) (string, error) {
	payload := map[string]string{
		"name":       p.Name,
		"position":   string(p.Position),
		"department": string(p.Department),
	}
	return c.generate(ctx, "/v1/copy/player-bio", payload)
}

func (c *CopyClient) generate(ctx context.Context, endpoint string, payload map[string]string) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("copywriter returned status code: %d, response: %s", resp.StatusCode, string(responseBody))
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	var out copyResponse
	if err := json.Unmarshal(responseBody, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return out.Text, nil
}
