package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/M2-SYNDICATE/Atomichack3.0/internal/domain/review"
)

// AdminUsers lists every account except the requesting admin.
// Admin role only; other roles get a 403 from the server.
func (c *Client) AdminUsers(ctx context.Context) (review.UserListing, error) {
	var listing review.UserListing
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/admin/users",
		header: jsonHeader(),
	}, &listing)
	return listing, err
}

// CreateUser registers a new account with an explicit role.
func (c *Client) CreateUser(ctx context.Context, input review.CreateUserInput) (review.CreateUserResult, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return review.CreateUserResult{}, err
	}
	body, err := json.Marshal(input)
	if err != nil {
		return review.CreateUserResult{}, err
	}

	var result review.CreateUserResult
	err = c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/admin/reg",
		header: jsonHeader(),
		body:   bytes.NewReader(body),
	}, &result)
	return result, err
}

// WorktimeSettings retrieves the work calendar the server uses when
// computing fix/review durations.
func (c *Client) WorktimeSettings(ctx context.Context) (review.WorktimeSettings, error) {
	var settings review.WorktimeSettings
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/admin/worktime-settings",
		header: jsonHeader(),
	}, &settings)
	return settings, err
}

// SetWorktimeSettings replaces the work calendar.
func (c *Client) SetWorktimeSettings(ctx context.Context, settings review.WorktimeSettings) (review.WorktimeSettings, error) {
	body, err := json.Marshal(settings)
	if err != nil {
		return review.WorktimeSettings{}, err
	}

	var updated review.WorktimeSettings
	err = c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/admin/worktime-settings",
		header: jsonHeader(),
		body:   bytes.NewReader(body),
	}, &updated)
	return updated, err
}
