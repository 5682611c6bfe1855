package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bolao/landing/internal/model"
)

const poolsPath = "/pools"

type createPoolRequest struct {
	Title string `json:"title"`
}

// CreatePool asks the backend to create a pool and returns it with its
// generated invite code.
func (c *Client) CreatePool(ctx context.Context, title string) (*model.Pool, error) {
	data, err := c.do(ctx, http.MethodPost, poolsPath, createPoolRequest{Title: title})
	if err != nil {
		return nil, err
	}

	var pool model.Pool
	if err := json.Unmarshal(data, &pool); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, poolsPath, err)
	}

	return &pool, nil
}
