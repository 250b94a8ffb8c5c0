package service

import (
	"context"
	"errors"

	"github.com/canteiro-app/canteiro/internal/app"
	"github.com/canteiro-app/canteiro/internal/repository"
)

type preferenceStore struct {
	repo repository.PreferenceRepo
}

// NewPreferenceStore exposes a PreferenceRepo as an app.PreferenceStore.
func NewPreferenceStore(repo repository.PreferenceRepo) app.PreferenceStore {
	return &preferenceStore{repo: repo}
}

func (s *preferenceStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.repo.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return "", app.ErrPreferenceNotFound
	}
	return v, err
}

func (s *preferenceStore) Set(ctx context.Context, key, value string) error {
	return s.repo.Set(ctx, key, value)
}
