// Package storage persists the access token between sessions.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/quasilyte/gdata"
)

const tokenKey = "token"

// ErrNoToken is returned when no token has been stored
var ErrNoToken = errors.New("no stored token")

// TokenStore reads and writes the access token
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}

// GDataStore keeps the token in the per-user app data directory
type GDataStore struct {
	m *gdata.Manager
}

// OpenGData opens the data directory for appName
func OpenGData(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open app data: %w", err)
	}
	return &GDataStore{m: m}, nil
}

// Load returns the stored token, or ErrNoToken
func (s *GDataStore) Load() (string, error) {
	data, err := s.m.LoadItem(tokenKey)
	if err != nil {
		return "", fmt.Errorf("failed to load token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

// Save stores the token
func (s *GDataStore) Save(token string) error {
	if err := s.m.SaveItem(tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Delete forgets the stored token by saving an empty item
func (s *GDataStore) Delete() error {
	if err := s.m.SaveItem(tokenKey, nil); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// MemoryStore is an in-process TokenStore, used by -skip-auth and tests
type MemoryStore struct {
	token string
}

// NewMemoryStore creates a store holding token ("" for none)
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Load() (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStore) Delete() error {
	s.token = ""
	return nil
}
