package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Session is the persisted login state
type Session struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Config holds CLI configuration
type Config struct {
	ServerURL   string
	Token       string
	SessionFile string
	Output      string
	Verbose     bool

	session Session
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:   getEnvOrDefault("MYSQUAD_SERVER", "http://localhost:8080"),
		Token:       os.Getenv("MYSQUAD_TOKEN"),
		SessionFile: getEnvOrDefault("MYSQUAD_SESSION_FILE", defaultSessionFile()),
		Output:      "text",
		Verbose:     false,
	}
}

// LoadSession loads the persisted session if no token was supplied via
// flag or environment
func (c *Config) LoadSession() error {
	if c.Token != "" {
		return nil
	}

	data, err := os.ReadFile(c.SessionFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // Not logged in is fine
		}
		return err
	}

	if err := json.Unmarshal(data, &c.session); err != nil {
		return err
	}

	c.Token = c.session.Token
	return nil
}

// SaveSession persists a session to the session file
func (c *Config) SaveSession(s Session) error {
	c.session = s
	c.Token = s.Token

	dir := filepath.Dir(c.SessionFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(c.SessionFile, data, 0600)
}

// ClearSession removes the persisted session
func (c *Config) ClearSession() error {
	c.session = Session{}
	c.Token = ""

	err := os.Remove(c.SessionFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Session returns the loaded session
func (c *Config) Session() Session {
	return c.session
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mysquad/session.json"
	}
	return filepath.Join(home, ".mysquad", "session.json")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
