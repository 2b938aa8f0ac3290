// Package config manages the persisted account credential.
//
// The credential lives in a single file holding one assignment line,
// ACCOUNT_ID="<token>". A missing or malformed file simply means no
// credential is stored.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

const credentialKey = "ACCOUNT_ID"

var (
	// ErrInvalidToken indicates an empty or missing token argument.
	ErrInvalidToken = errors.New("token must not be empty")
	// ErrMissingCredential indicates no token was supplied and none is stored.
	ErrMissingCredential = errors.New("no account token configured")
)

// Store holds the credential loaded from disk.
type Store struct {
	path  string
	token string
}

// DefaultPath returns the default credential file location.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "stash-client", "config"), nil
}

// Load reads the credential file at path. An empty path means the
// default location. A file that is absent or unparseable leaves the
// credential unset; only a path resolution failure is an error.
func Load(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, nil
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, credentialKey+"=")
		if !ok {
			continue
		}
		s.token = strings.Trim(rest, `"`)
		break
	}

	return s, nil
}

// Token returns the stored credential, or "" if none is stored.
func (s *Store) Token() string {
	return s.token
}

// Path returns the credential file location backing this store.
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the credential file with the given token, creating
// parent directories as needed.
func (s *Store) Save(token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	line := fmt.Sprintf("%s=%q\n", credentialKey, token)
	if err := os.WriteFile(s.path, []byte(line), 0o600); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}

	s.token = token
	return nil
}

// Resolve returns the effective credential for one call: an explicit
// token always wins over the stored one.
func (s *Store) Resolve(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if s.token != "" {
		return s.token, nil
	}
	return "", ErrMissingCredential
}
