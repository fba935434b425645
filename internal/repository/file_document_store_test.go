package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GridAgg-App/internal/domain/model"
)

func TestFileDocumentStore_ReadWrite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "Index_5km.geojson")
	store := NewFileDocumentStore()

	body := []byte(`{"type":"FeatureCollection","name":"指数","features":[]}`)
	require.NoError(t, store.Write(ctx, path, body))

	got, err := store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	// 上書き
	require.NoError(t, store.Write(ctx, path, []byte(`{}`)))
	got, err = store.Read(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))

	// 一時ファイルが残らない
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileDocumentStore_ReadNotFound(t *testing.T) {
	_, err := NewFileDocumentStore().Read(context.Background(), filepath.Join(t.TempDir(), "missing.geojson"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInputNotFound))
}

func TestFileDocumentStore_ReadDirectory(t *testing.T) {
	_, err := NewFileDocumentStore().Read(context.Background(), t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInputUnreadable))
}

func TestFileDocumentStore_WriteUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.geojson")
	err := NewFileDocumentStore().Write(context.Background(), path, []byte(`{}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrOutputUnwritable))
}
