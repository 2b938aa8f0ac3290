package stash

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUploadAnonStreamsFile(t *testing.T) {
	client, _, upload := newTestClient(t, "")
	src := writeTempFile(t, "report.txt", "file contents here")

	resp, err := client.UploadAnon(context.Background(), src, "report.txt")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := upload.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/report.txt", req.Path)
	assert.Equal(t, "file contents here", string(req.Body))
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestUploadAnonMissingFileSkipsNetwork(t *testing.T) {
	client, _, upload := newTestClient(t, "")

	_, err := client.UploadAnon(context.Background(), "/does/not/exist", "x")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Zero(t, upload.count(), "no request may be issued for a missing file")
}

func TestUploadAnonRejectsDirectory(t *testing.T) {
	client, _, upload := newTestClient(t, "")

	_, err := client.UploadAnon(context.Background(), t.TempDir(), "x")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.Zero(t, upload.count())
}

func TestUploadAuthPathAndToken(t *testing.T) {
	client, _, upload := newTestClient(t, "abc123")
	src := writeTempFile(t, "clip.bin", "data")

	_, err := client.UploadAuth(context.Background(), src, "parent9", "clip.bin")
	require.NoError(t, err)

	req := upload.last(t)
	assert.Equal(t, "/parent9/clip.bin", req.Path)
	assert.Equal(t, "Bearer abc123", req.Header.Get("Authorization"))
}

func TestUploadToLocationQuery(t *testing.T) {
	client, _, upload := newTestClient(t, "")
	src := writeTempFile(t, "a.txt", "a")

	_, err := client.UploadToLocation(context.Background(), src, "a.txt", "loc-7")
	require.NoError(t, err)

	req := upload.last(t)
	assert.Equal(t, "/a.txt", req.Path)
	assert.Equal(t, "loc-7", req.Query.Get("locationId"))
}

func TestUploadWithNoteBase64(t *testing.T) {
	client, _, upload := newTestClient(t, "")
	src := writeTempFile(t, "a.txt", "a")

	_, err := client.UploadWithNote(context.Background(), src, "a.txt", "hello world")
	require.NoError(t, err)

	req := upload.last(t)
	assert.Equal(t, "aGVsbG8gd29ybGQ=", req.Query.Get("note"))
}

func TestUploadEscapesFileName(t *testing.T) {
	client, _, upload := newTestClient(t, "")
	src := writeTempFile(t, "a.txt", "a")

	_, err := client.UploadAnon(context.Background(), src, "weird/name #1.txt")
	require.NoError(t, err)

	assert.Equal(t, "/weird%2Fname%20%231.txt", upload.last(t).RawPath)
}

func TestUploadDetectsContentType(t *testing.T) {
	client, _, upload := newTestClient(t, "")
	src := writeTempFile(t, "doc.json", `{"k":"v"}`)

	_, err := client.UploadAnon(context.Background(), src, "doc.json")
	require.NoError(t, err)

	contentType := upload.last(t).Header.Get("Content-Type")
	assert.NotEmpty(t, contentType)
}

func TestUploadNon2xxIsNotAnError(t *testing.T) {
	client, _, upload := newTestClient(t, "")
	upload.status = http.StatusInsufficientStorage
	upload.body = `{"error":"quota exceeded"}`
	src := writeTempFile(t, "big.bin", "xxxx")

	resp, err := client.UploadAnon(context.Background(), src, "big.bin")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInsufficientStorage, resp.StatusCode)
	assert.JSONEq(t, `{"error":"quota exceeded"}`, string(resp.Body))
}
