package httpclient

import "sync/atomic"

// CredentialStore holds the process-wide authorization token attached to
// every outbound request. It is a single-writer cell: reads never block and
// a write replaces the whole value atomically, so a reader observes either
// the previous or the new token, never a torn one.
//
// A request built while a login is in flight may carry the stale token.
// If two logins complete concurrently the last write wins. Both are accepted
// behavior for the single-session model this client implements.
type CredentialStore struct {
	token atomic.Value
}

// NewCredentialStore creates a store seeded with the initial placeholder.
func NewCredentialStore(initial string) *CredentialStore {
	s := &CredentialStore{}
	s.token.Store(initial)
	return s
}

// Get returns the current token.
func (s *CredentialStore) Get() string {
	return s.token.Load().(string)
}

// Set replaces the current token. Called from the login completion path
// after the backend issues a new session hash.
func (s *CredentialStore) Set(token string) {
	s.token.Store(token)
}
