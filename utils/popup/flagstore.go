package popup

import (
	"context"
	"sync"
)

// Flag identifies a per-session popup flag
type Flag string

const (
	FlagBannerShown Flag = "bannerShown"
	FlagNoticeShown Flag = "noticeShown"
)

// FlagStore tracks which popups a visitor session has already seen.
// Flags are scoped to the browser session; implementations decide how that
// scope maps to storage (TTL in Redis, process lifetime in memory).
type FlagStore interface {
	Get(ctx context.Context, sessionID string, flag Flag) (bool, error)
	Set(ctx context.Context, sessionID string, flag Flag) error
}

// MemoryFlagStore is an in-process FlagStore used in tests and when Redis is
// unavailable. Entries live until the process exits.
type MemoryFlagStore struct {
	mu    sync.RWMutex
	flags map[string]map[Flag]bool
}

// NewMemoryFlagStore creates an empty in-memory flag store
func NewMemoryFlagStore() *MemoryFlagStore {
	return &MemoryFlagStore{
		flags: make(map[string]map[Flag]bool),
	}
}

// Get reports whether the flag is set for the session
func (s *MemoryFlagStore) Get(ctx context.Context, sessionID string, flag Flag) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[sessionID][flag], nil
}

// Set marks the flag for the session
func (s *MemoryFlagStore) Set(ctx context.Context, sessionID string, flag Flag) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flags[sessionID] == nil {
		s.flags[sessionID] = make(map[Flag]bool)
	}
	s.flags[sessionID][flag] = true
	return nil
}
