package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markers.json")
	store := NewFileStore(path)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, KeyLastViewedReply)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set(ctx, KeyLastViewedReply, "ticket-42"))

	v, ok, err := store.Get(ctx, KeyLastViewedReply)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ticket-42", v)

	// A fresh store over the same file sees the persisted value
	v, ok, err = NewFileStore(path).Get(ctx, KeyLastViewedReply)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ticket-42", v)
}

func TestFileStoreOverwrite(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "markers.json"))
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, KeyLastViewedReply, "ticket-1"))
	assert.NoError(t, store.Set(ctx, KeyLastViewedReply, "ticket-2"))

	v, ok, err := store.Get(ctx, KeyLastViewedReply)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ticket-2", v)
}

func TestFileStoreCorruptFileStartsOver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markers.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	ctx := context.Background()

	_, ok, err := store.Get(ctx, KeyLastViewedReply)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Set(ctx, KeyLastViewedReply, "ticket-1"))
	v, ok, err := store.Get(ctx, KeyLastViewedReply)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ticket-1", v)
}
