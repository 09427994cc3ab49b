package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-analyzer/internal/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Predictions: []types.RolePrediction{{Role: "Python Developer", Confidence: 0.8}},
		Skills:      types.NewSkillSet([]string{"python", "sql"}),
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := New("resume.pdf", sampleResult(), 0)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "resume.pdf", s.Filename)
	assert.Equal(t, DefaultTTL, s.ExpiresAt.Sub(s.CreatedAt))
	assert.False(t, s.Expired(time.Now().UTC()))
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	s := New("resume.pdf", sampleResult(), time.Hour)

	require.NoError(t, store.Save(context.Background(), s))

	got, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, "Python Developer", got.Result.TopRole().Role)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	got, err := store.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreGetExpired(t *testing.T) {
	store := NewMemoryStore()
	s := New("resume.pdf", sampleResult(), time.Hour)
	s.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, store.Save(context.Background(), s))

	got, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, store.Len())
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	s := New("resume.pdf", sampleResult(), time.Hour)
	require.NoError(t, store.Save(context.Background(), s))

	require.NoError(t, store.Delete(context.Background(), s.ID))

	got, err := store.Get(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(context.Background(), s.ID))
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	store := NewMemoryStore()

	live := New("live.pdf", sampleResult(), time.Hour)
	require.NoError(t, store.Save(context.Background(), live))

	stale := New("stale.pdf", sampleResult(), time.Hour)
	stale.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	require.NoError(t, store.Save(context.Background(), stale))

	removed, err := store.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())
}
