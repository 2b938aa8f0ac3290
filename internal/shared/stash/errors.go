package stash

import "errors"

// ErrFileNotFound indicates an upload source path that does not
// reference an existing regular file. Checked before any request is
// issued.
var ErrFileNotFound = errors.New("file not found")
