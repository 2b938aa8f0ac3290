package stash

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// UploadAnon uploads a file anonymously under the given destination name.
func (c *Client) UploadAnon(ctx context.Context, localPath, fileName string) (*Response, error) {
	return c.uploadFile(ctx, localPath, "/"+url.PathEscape(fileName), nil)
}

// UploadAuth uploads a file into the directory identified by parentID.
// Requires an authenticated client.
func (c *Client) UploadAuth(ctx context.Context, localPath, parentID, fileName string) (*Response, error) {
	path := "/" + url.PathEscape(parentID) + "/" + url.PathEscape(fileName)
	return c.uploadFile(ctx, localPath, path, nil)
}

// UploadToLocation uploads a file anonymously to a specific storage
// location.
func (c *Client) UploadToLocation(ctx context.Context, localPath, fileName, locationID string) (*Response, error) {
	query := url.Values{"locationId": {locationID}}
	return c.uploadFile(ctx, localPath, "/"+url.PathEscape(fileName), query)
}

// UploadWithNote uploads a file anonymously with an attached note. The
// note travels base64-encoded in the query string.
func (c *Client) UploadWithNote(ctx context.Context, localPath, fileName, note string) (*Response, error) {
	encoded := base64.StdEncoding.EncodeToString([]byte(note))
	query := url.Values{"note": {encoded}}
	return c.uploadFile(ctx, localPath, "/"+url.PathEscape(fileName), query)
}

// uploadFile streams a PUT of the file body to the upload host. The
// source must be an existing regular file; this is verified before any
// request goes out.
func (c *Client) uploadFile(ctx context.Context, localPath, path string, query url.Values) (*Response, error) {
	info, err := os.Stat(localPath)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
	}

	contentType := "application/octet-stream"
	if mtype, err := mimetype.DetectFile(localPath); err == nil {
		contentType = mtype.String()
	}

	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reqURL := c.uploadBaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, file)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.ContentLength = info.Size()
	req.Header.Set("Content-Type", contentType)
	c.applyAuth(req)

	return c.do(req)
}
