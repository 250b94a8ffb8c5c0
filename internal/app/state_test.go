package app

import (
	"context"
	"errors"
	"testing"

	"github.com/canteiro-app/canteiro/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrPreferenceNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func TestNewAppState_DefaultsWhenUnset(t *testing.T) {
	s, err := NewAppState(context.Background(), newMemStore())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppModule, s.ActiveModule())
}

func TestNewAppState_ReadsStoredModule(t *testing.T) {
	store := newMemStore()
	store.values[ActiveModuleKey] = "Logística"

	s, err := NewAppState(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, domain.ModuleLogistics, s.ActiveModule())
}

func TestNewAppState_IgnoresUnknownStoredModule(t *testing.T) {
	store := newMemStore()
	store.values[ActiveModuleKey] = "financeiro"

	s, err := NewAppState(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppModule, s.ActiveModule())
}

func TestNewAppState_PropagatesStoreErrors(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk on fire")

	_, err := NewAppState(context.Background(), store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading active module")
}

func TestAppState_SetActiveModulePersists(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	s, err := NewAppState(ctx, store)
	require.NoError(t, err)

	require.NoError(t, s.SetActiveModule(ctx, domain.ModuleBudgets))
	assert.Equal(t, domain.ModuleBudgets, s.ActiveModule())
	assert.Equal(t, "orcamentos", store.values[ActiveModuleKey])

	reloaded, err := NewAppState(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, domain.ModuleBudgets, reloaded.ActiveModule())
}

func TestAppState_SetActiveModuleRejectsInvalid(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	s, err := NewAppState(ctx, store)
	require.NoError(t, err)

	require.Error(t, s.SetActiveModule(ctx, "financeiro"))
	assert.Equal(t, domain.DefaultAppModule, s.ActiveModule())
	assert.Empty(t, store.values)
}

func TestAppState_SetActiveModuleKeepsOldValueOnStoreError(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()
	s, err := NewAppState(ctx, store)
	require.NoError(t, err)

	store.setErr = errors.New("read-only")
	err = s.SetActiveModule(ctx, domain.ModuleReports)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving active module")
	assert.Equal(t, domain.DefaultAppModule, s.ActiveModule())
}
