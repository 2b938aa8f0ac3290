package stash

import (
	"context"
	"net/http"
	"net/url"
)

// GetRoot fetches the listing of the account's root directory.
func (c *Client) GetRoot(ctx context.Context) (*Response, error) {
	return c.apiRequest(ctx, http.MethodGet, "/api/fs", nil)
}

// GetDir fetches the listing of the directory identified by id.
func (c *Client) GetDir(ctx context.Context, id string) (*Response, error) {
	return c.apiRequest(ctx, http.MethodGet, "/api/fs/"+url.PathEscape(id), nil)
}

// CreateDir creates a directory under the given parent.
func (c *Client) CreateDir(ctx context.Context, name, parentID string) (*Response, error) {
	body := struct {
		Name     string `json:"name"`
		ParentID string `json:"parentId"`
	}{Name: name, ParentID: parentID}
	return c.apiRequest(ctx, http.MethodPost, "/api/fs", body)
}

// Rename renames a directory or file entry.
func (c *Client) Rename(ctx context.Context, id, name string) (*Response, error) {
	body := struct {
		Name string `json:"name"`
	}{Name: name}
	return c.apiRequest(ctx, http.MethodPatch, "/api/fs/"+url.PathEscape(id), body)
}

// Move reparents a directory or file entry.
func (c *Client) Move(ctx context.Context, id, parentID string) (*Response, error) {
	body := struct {
		ParentID string `json:"parentId"`
	}{ParentID: parentID}
	return c.apiRequest(ctx, http.MethodPut, "/api/fs/"+url.PathEscape(id), body)
}

// AddNote attaches a note to a file entry.
func (c *Client) AddNote(ctx context.Context, id, note string) (*Response, error) {
	body := struct {
		Note string `json:"note"`
	}{Note: note}
	return c.apiRequest(ctx, http.MethodPut, "/api/fs/"+url.PathEscape(id), body)
}

// Delete removes a directory or file entry.
func (c *Client) Delete(ctx context.Context, id string) (*Response, error) {
	return c.apiRequest(ctx, http.MethodDelete, "/api/fs/"+url.PathEscape(id), nil)
}
