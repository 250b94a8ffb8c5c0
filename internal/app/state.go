package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/canteiro-app/canteiro/internal/domain"
)

// ActiveModuleKey is the preference key holding the selected module.
const ActiveModuleKey = "active_module"

// ErrPreferenceNotFound is returned by a PreferenceStore for unknown keys.
var ErrPreferenceNotFound = errors.New("preference not found")

// PreferenceStore persists user preferences between runs.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// AppState is the per-user application state. It is built from a
// PreferenceStore instead of reading any global storage.
type AppState struct {
	mu     sync.RWMutex
	store  PreferenceStore
	active domain.AppModule
}

// NewAppState loads the active module from store. A missing or unknown
// stored value selects domain.DefaultAppModule; other store errors are
// returned.
func NewAppState(ctx context.Context, store PreferenceStore) (*AppState, error) {
	s := &AppState{store: store, active: domain.DefaultAppModule}

	raw, err := store.Get(ctx, ActiveModuleKey)
	switch {
	case errors.Is(err, ErrPreferenceNotFound):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("loading active module: %w", err)
	}

	if m, err := domain.ParseAppModule(raw); err == nil {
		s.active = m
	}
	return s, nil
}

// ActiveModule returns the selected module.
func (s *AppState) ActiveModule() domain.AppModule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetActiveModule validates, persists and selects m.
func (s *AppState) SetActiveModule(ctx context.Context, m domain.AppModule) error {
	if !m.Valid() {
		return fmt.Errorf("unknown module %q", m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ctx, ActiveModuleKey, string(m)); err != nil {
		return fmt.Errorf("saving active module: %w", err)
	}
	s.active = m
	return nil
}
