package stash

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// BulkResult is the outcome of one item in a bulk operation.
type BulkResult struct {
	Item     string
	Skipped  bool
	Response *Response
	Err      error
}

// BulkUpload uploads each file in order into the directory identified
// by parentID. The destination name is the file's base name. A missing
// source file is skipped, not fatal; failures never abort the loop and
// nothing is rolled back. The report callback, if set, fires after
// every item.
func (c *Client) BulkUpload(ctx context.Context, parentID string, files []string, report func(BulkResult)) []BulkResult {
	results := make([]BulkResult, 0, len(files))

	for _, file := range files {
		result := BulkResult{Item: file}

		if info, err := os.Stat(file); err != nil || !info.Mode().IsRegular() {
			result.Skipped = true
			result.Err = fmt.Errorf("%w: %s", ErrFileNotFound, file)
		} else {
			result.Response, result.Err = c.UploadAuth(ctx, file, parentID, filepath.Base(file))
		}

		results = append(results, result)
		if report != nil {
			report(result)
		}
	}

	return results
}

// BulkDelete issues one delete per id in order. Each request is
// independent of the others' outcomes.
func (c *Client) BulkDelete(ctx context.Context, ids []string, report func(BulkResult)) []BulkResult {
	results := make([]BulkResult, 0, len(ids))

	for _, id := range ids {
		result := BulkResult{Item: id}
		result.Response, result.Err = c.Delete(ctx, id)

		results = append(results, result)
		if report != nil {
			report(result)
		}
	}

	return results
}
