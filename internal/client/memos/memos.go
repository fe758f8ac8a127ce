package memos

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/crestwood/memomd/internal/memos"
)

// ListMemos fetches the memo list in a single request. The query is the
// API path plus query string, e.g. "/api/v1/memo?creatorId=1". If the
// instance paginates, only the first page is returned.
func (c *Client) ListMemos(ctx context.Context, query string) ([]memos.Memo, error) {
	resp, err := c.makeRequest(ctx, query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	list, err := memos.DecodeMemoList(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode memo list response: %w", err)
	}

	return list, nil
}

// GetResource streams the raw bytes of an attached resource. The caller
// owns the returned body.
func (c *Client) GetResource(ctx context.Context, name string) (io.ReadCloser, error) {
	resp, err := c.makeRequest(ctx, "/o/r/"+name)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// GetStatus fetches the instance profile and returns its version.
func (c *Client) GetStatus(ctx context.Context) (memos.Version, error) {
	resp, err := c.makeRequest(ctx, "/api/v1/status")
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result struct {
		Profile struct {
			Version string `json:"version"`
		} `json:"profile"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode status response: %w", err)
	}

	version, err := memos.NewVersion(result.Profile.Version)
	if err != nil {
		return "", fmt.Errorf("failed to parse instance version: %w", err)
	}

	return version, nil
}
