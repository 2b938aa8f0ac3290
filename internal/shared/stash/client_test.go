package stash

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method  string
	Path    string
	RawPath string
	Query   url.Values
	Header  http.Header
	Body    []byte
}

// recorder captures every request and answers with a fixed response.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func (r *recorder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	body, _ := io.ReadAll(req.Body)

	r.mu.Lock()
	r.requests = append(r.requests, recordedRequest{
		Method:  req.Method,
		Path:    req.URL.Path,
		RawPath: req.URL.EscapedPath(),
		Query:   req.URL.Query(),
		Header:  req.Header.Clone(),
		Body:    body,
	})
	r.mu.Unlock()

	w.WriteHeader(r.status)
	_, _ = w.Write([]byte(r.body))
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.requests)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.requests, "expected at least one request")
	return r.requests[len(r.requests)-1]
}

// newTestClient points both hosts at recorder-backed test servers.
func newTestClient(t *testing.T, token string) (*Client, *recorder, *recorder) {
	t.Helper()

	api := &recorder{status: http.StatusOK, body: `{"status":"ok"}`}
	upload := &recorder{status: http.StatusOK, body: `{"status":"ok"}`}

	apiSrv := httptest.NewServer(api)
	uploadSrv := httptest.NewServer(upload)
	t.Cleanup(apiSrv.Close)
	t.Cleanup(uploadSrv.Close)

	client := New(Config{
		APIBaseURL:    apiSrv.URL,
		UploadBaseURL: uploadSrv.URL,
		Token:         token,
	})
	return client, api, upload
}

func TestAccountSendsBearerToken(t *testing.T) {
	client, api, _ := newTestClient(t, "abc123")

	resp, err := client.Account(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	req := api.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/account", req.Path)
	assert.Equal(t, "Bearer abc123", req.Header.Get("Authorization"))
}

func TestLocationsSendsNoAuth(t *testing.T) {
	client, api, _ := newTestClient(t, "")

	_, err := client.Locations(context.Background())
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/locations", req.Path)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestGetRootAndGetDir(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	_, err := client.GetRoot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/fs", api.last(t).Path)

	_, err = client.GetDir(context.Background(), "dir42")
	require.NoError(t, err)
	req := api.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/fs/dir42", req.Path)
}

func TestCreateDirBody(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	_, err := client.CreateDir(context.Background(), "Movies", "root123")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/fs", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, map[string]string{"name": "Movies", "parentId": "root123"}, body)
}

func TestRenameBody(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	_, err := client.Rename(context.Background(), "f1", "new name")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "/api/fs/f1", req.Path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, map[string]string{"name": "new name"}, body)
}

func TestMoveBody(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	_, err := client.Move(context.Background(), "f1", "p2")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/fs/f1", req.Path)

	var body map[string]string
	require.NoError(t, json.Unmarshal(req.Body, &body))
	assert.Equal(t, map[string]string{"parentId": "p2"}, body)
}

func TestAddNoteEscapesJSON(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	note := `a "quoted" note with a
newline`
	_, err := client.AddNote(context.Background(), "f1", note)
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(api.last(t).Body, &body))
	assert.Equal(t, note, body["note"])
}

func TestDelete(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	_, err := client.Delete(context.Background(), "dir7")
	require.NoError(t, err)

	req := api.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/fs/dir7", req.Path)
	assert.Empty(t, req.Body)
}

func TestPathSegmentsAreEscaped(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")

	_, err := client.GetDir(context.Background(), "a/b c")
	require.NoError(t, err)

	// one escaped segment, not a deeper path
	assert.Equal(t, "/api/fs/a%2Fb%20c", api.last(t).RawPath)
}

func TestNon2xxResponseIsNotAnError(t *testing.T) {
	client, api, _ := newTestClient(t, "tok")
	api.status = http.StatusNotFound
	api.body = `{"error":"no such directory"}`

	resp, err := client.GetDir(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"error":"no such directory"}`, string(resp.Body))
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	client := New(Config{APIBaseURL: addr, UploadBaseURL: addr})
	_, err := client.Account(context.Background())
	assert.Error(t, err)
}
