package stash

import (
	"bytes"
	"encoding/json"
)

// Render pretty-prints a response body when it is valid JSON and
// returns it verbatim otherwise. The content itself is never inspected.
func Render(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}

	var out bytes.Buffer
	if err := json.Indent(&out, trimmed, "", "  "); err != nil {
		return string(body)
	}
	return out.String()
}
