package stash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkUploadSkipsMissingAndContinues(t *testing.T) {
	client, _, upload := newTestClient(t, "tok")

	first := writeTempFile(t, "one.txt", "1")
	second := writeTempFile(t, "two.txt", "2")
	missing := "/no/such/file.txt"

	var reported []BulkResult
	results := client.BulkUpload(context.Background(), "parent1",
		[]string{first, missing, second},
		func(r BulkResult) { reported = append(reported, r) })

	require.Len(t, results, 3)
	assert.Equal(t, results, reported)

	assert.False(t, results[0].Skipped)
	require.NoError(t, results[0].Err)

	assert.True(t, results[1].Skipped)
	assert.ErrorIs(t, results[1].Err, ErrFileNotFound)

	assert.False(t, results[2].Skipped)
	require.NoError(t, results[2].Err)

	// exactly two uploads went out, in input order, named by base name
	require.Equal(t, 2, upload.count())
	assert.Equal(t, "/parent1/one.txt", upload.requests[0].Path)
	assert.Equal(t, "/parent1/two.txt", upload.requests[1].Path)
}

func TestBulkDeleteIssuesOneRequestPerID(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	results := client.BulkDelete(context.Background(), []string{"id1", "id2", "id3"}, nil)

	require.Len(t, results, 3)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}

	require.Equal(t, 3, api.count())
	assert.Equal(t, "/api/fs/id1", api.requests[0].Path)
	assert.Equal(t, "/api/fs/id2", api.requests[1].Path)
	assert.Equal(t, "/api/fs/id3", api.requests[2].Path)
}

func TestBulkDeleteContinuesOnRemoteError(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")
	api.status = 500
	api.body = `{"error":"boom"}`

	results := client.BulkDelete(context.Background(), []string{"a", "b"}, nil)

	// a 5xx is still a delivered response; both requests go out
	require.Len(t, results, 2)
	assert.Equal(t, 2, api.count())
	for _, r := range results {
		assert.NoError(t, r.Err)
		assert.Equal(t, 500, r.Response.StatusCode)
	}
}
