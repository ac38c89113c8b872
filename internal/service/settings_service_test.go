package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cosmic-chat-be/internal/dto"
	"cosmic-chat-be/internal/entity"
)

type failingSettingsRepo struct{}

func (failingSettingsRepo) Get(ctx context.Context) (*entity.AppSettings, error) {
	return nil, errors.New("db down")
}
func (failingSettingsRepo) Save(ctx context.Context, s *entity.AppSettings) error {
	return errors.New("db down")
}

func TestSettingsGetFallsBackToDefaults(t *testing.T) {
	ss := NewSettingsService(&stubSettingsRepo{}, noopLogger{})

	got := ss.Get(context.Background())
	assert.Equal(t, entity.DefaultSettings(), got)
}

func TestSettingsGetDegradesOnRepoError(t *testing.T) {
	ss := NewSettingsService(failingSettingsRepo{}, noopLogger{})

	got := ss.Get(context.Background())
	assert.Equal(t, entity.DefaultSettings(), got)
}

func TestSettingsUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := &stubSettingsRepo{}
	ss := NewSettingsService(repo, noopLogger{})

	theme := "dark"
	streaming := false
	got, err := ss.Update(context.Background(), &dto.UpdateSettingsRequest{
		Theme:           &theme,
		EnableStreaming: &streaming,
	})

	require.NoError(t, err)
	assert.Equal(t, "dark", got.Theme)
	assert.False(t, got.EnableStreaming)
	// Untouched fields keep their defaults.
	assert.Equal(t, "medium", got.FontSize)
	assert.True(t, got.EnableMemory)

	assert.Equal(t, got, repo.settings)
}

func TestSettingsResetRestoresDefaults(t *testing.T) {
	repo := &stubSettingsRepo{}
	ss := NewSettingsService(repo, noopLogger{})

	theme := "dark"
	_, err := ss.Update(context.Background(), &dto.UpdateSettingsRequest{Theme: &theme})
	require.NoError(t, err)

	got, err := ss.Reset(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), got)
	assert.Equal(t, entity.DefaultSettings(), repo.settings)
}
