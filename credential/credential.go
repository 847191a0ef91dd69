// Package credential tracks the session's login status and persists
// the bearer token with a fixed expiry window.
package credential

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"
)

// TTL is the fixed lifetime of a persisted credential.
const TTL = 24 * time.Hour

// DefaultFile is the well-known name of the credential file.
const DefaultFile = "credential.json"

// Remote is the part of the auth service used on logout.
type Remote interface {
	Logout(ctx context.Context) error
}

// record is the on-disk shape of the credential.
type record struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Store holds the session credential. Callers must Initialize before
// trusting LoggedIn: until then the login status is unknown and data
// loading decisions would race against the startup check.
type Store struct {
	path        string
	token       string
	expires     time.Time
	loggedIn    bool
	initialized bool
}

// Open returns a Store over the given credential file path.
func Open(path string) *Store { return &Store{path: path} }

// Initialize reads the persisted credential, if any, and settles the
// login status. Initialized becomes true whether or not a credential
// was found.
func (s *Store) Initialize() {
	defer func() { s.initialized = true }()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		log.Printf("cannot read credential (ignored): %v", err)
		return
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("cannot parse credential (ignored): %v", err)
		return
	}
	if rec.AccessToken == "" || time.Now().After(rec.ExpiresAt) {
		// Expired or empty: treat as anonymous and clean up.
		os.Remove(s.path)
		return
	}
	s.token = rec.AccessToken
	s.expires = rec.ExpiresAt
	s.loggedIn = true
}

// Initialized reports whether the startup check has completed.
func (s *Store) Initialized() bool { return s.initialized }

// LoggedIn reports whether the session holds a valid credential.
func (s *Store) LoggedIn() bool { return s.loggedIn }

// Token yields the bearer token for outgoing requests.
func (s *Store) Token() (string, bool) {
	if !s.loggedIn || s.token == "" {
		return "", false
	}
	return s.token, true
}

// Login persists the token with the fixed expiry window and marks the
// session authenticated.
func (s *Store) Login(token string) error {
	if err := s.persist(token); err != nil {
		return err
	}
	s.loggedIn = true
	return nil
}

// Replace adopts a refreshed token, keeping the session authenticated
// and renewing the expiry window.
func (s *Store) Replace(token string) error { return s.Login(token) }

// Logout best-effort notifies the remote service, then unconditionally
// erases the local credential. Local state is the source of truth for
// session gating, so the remote failure is logged and swallowed.
func (s *Store) Logout(ctx context.Context, remote Remote) {
	if remote != nil {
		if err := remote.Logout(ctx); err != nil {
			log.Printf("logout call failed (ignored): %v", err)
		}
	}
	s.Erase()
}

// Erase drops the credential locally without telling the remote.
func (s *Store) Erase() {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("cannot remove credential (ignored): %v", err)
	}
	s.token = ""
	s.expires = time.Time{}
	s.loggedIn = false
}

func (s *Store) persist(token string) error {
	s.token = token
	s.expires = time.Now().Add(TTL)
	data, err := json.MarshalIndent(record{AccessToken: token, ExpiresAt: s.expires}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	// The token is a secret: keep the file owner-only.
	return os.WriteFile(s.path, data, 0600)
}
