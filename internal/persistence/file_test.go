package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "dst_tickets", []byte(`[{"id":"1"}]`)))

	value, err := s.Get(ctx, "dst_tickets")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))

	// a second store over the same file sees the data
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	value, err = reopened.Get(ctx, "dst_tickets")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(value))
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	ctx := context.Background()

	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "ticketapp_session", []byte(`{"id":"1"}`)))
	require.NoError(t, s.Delete(ctx, "ticketapp_session"))

	_, err = s.Get(ctx, "ticketapp_session")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete(ctx, "ticketapp_session"))
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}

func TestMemoryStoreIsolatesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := []byte(`{"id":"1"}`)
	require.NoError(t, s.Set(ctx, "k", original))

	// mutating the caller's slice must not leak into the store
	original[2] = 'x'
	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(value))
}
