package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/bolao/landing/internal/model"
)

// Aggregate endpoints.
const (
	poolsCountPath   = "/pools/count"
	guessesCountPath = "/guesses/count"
	usersCountPath   = "/users/count"
	lastUsersPath    = "/users/last/%d"
)

// PoolsCount returns the number of pools created so far.
func (c *Client) PoolsCount(ctx context.Context) (int64, error) {
	return c.count(ctx, poolsCountPath)
}

// GuessesCount returns the number of guesses submitted so far.
func (c *Client) GuessesCount(ctx context.Context) (int64, error) {
	return c.count(ctx, guessesCountPath)
}

// UsersCount returns the number of registered users.
func (c *Client) UsersCount(ctx context.Context) (int64, error) {
	return c.count(ctx, usersCountPath)
}

// LastUsers returns up to n of the most recently created users.
func (c *Client) LastUsers(ctx context.Context, n int) ([]model.User, error) {
	if n <= 0 {
		return nil, fmt.Errorf("last users limit must be positive, got %d", n)
	}

	path := fmt.Sprintf(lastUsersPath, n)
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, path, err)
	}
	if users == nil {
		users = []model.User{}
	}

	return users, nil
}

// count fetches a `{ "count": n }` document.
func (c *Client) count(ctx context.Context, path string) (int64, error) {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}

	if !gjson.ValidBytes(data) {
		return 0, fmt.Errorf("%w: %s: invalid JSON", ErrMalformedResponse, path)
	}

	result := gjson.GetBytes(data, "count")
	if !result.Exists() || result.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %s: missing numeric count", ErrMalformedResponse, path)
	}

	return result.Int(), nil
}
