package stash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPrettyPrintsJSON(t *testing.T) {
	out := Render([]byte(`{"name":"Movies","parentId":"root123"}`))
	assert.Equal(t, "{\n  \"name\": \"Movies\",\n  \"parentId\": \"root123\"\n}", out)
}

func TestRenderPassesThroughNonJSON(t *testing.T) {
	out := Render([]byte("plain text, not json"))
	assert.Equal(t, "plain text, not json", out)
}

func TestRenderEmptyBody(t *testing.T) {
	assert.Empty(t, Render(nil))
	assert.Empty(t, Render([]byte("  \n")))
}
