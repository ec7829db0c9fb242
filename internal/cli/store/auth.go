package store

import (
	"net/http"
	"sync"
)

// Auth caches the authenticated identity and token. Actions call the
// API and update the cache; persistence is the caller's concern.
type Auth struct {
	client Doer

	mu    sync.RWMutex
	user  *Identity
	token string
}

// NewAuth creates an auth store
func NewAuth(client Doer) *Auth {
	return &Auth{client: client}
}

// Restore primes the cache from a previously persisted session
func (a *Auth) Restore(token string, user Identity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
	u := user
	a.user = &u
}

// Register creates an account and caches the resulting identity
func (a *Auth) Register(email, password, name string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	if name != "" {
		body["name"] = name
	}
	return a.authenticate("/api/v1/users/register", body)
}

// Login authenticates and caches the resulting identity
func (a *Auth) Login(email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	return a.authenticate("/api/v1/users/login", body)
}

func (a *Auth) authenticate(path string, body map[string]string) (AuthResult, error) {
	var result AuthResult
	if err := a.client.Do(http.MethodPost, path, body, &result); err != nil {
		return AuthResult{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = result.Token
	user := result.User
	a.user = &user

	return result, nil
}

// Logout drops the cached identity and token
func (a *Auth) Logout() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.user = nil
	a.token = ""
}

// User returns the cached identity, or nil when logged out
func (a *Auth) User() *Identity {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// Token returns the cached token
func (a *Auth) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// UserEmail returns the cached identity's email, or "" when logged out
func (a *Auth) UserEmail() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return ""
	}
	return a.user.Email
}

// IsAuthenticated reports whether an identity is cached
func (a *Auth) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.user != nil
}
