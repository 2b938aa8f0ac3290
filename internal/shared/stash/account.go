package stash

import (
	"context"
	"net/http"
)

// Account fetches details for the authenticated account.
func (c *Client) Account(ctx context.Context) (*Response, error) {
	return c.apiRequest(ctx, http.MethodGet, "/api/account", nil)
}

// Locations lists the available storage locations. No authentication
// required.
func (c *Client) Locations(ctx context.Context) (*Response, error) {
	return c.apiRequest(ctx, http.MethodGet, "/api/locations", nil)
}
