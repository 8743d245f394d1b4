package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-jobboard-backend/pkg/storage"

	"github.com/stretchr/testify/assert"
)

func TestLocalStore(t *testing.T) {
	store, err := storage.NewLocalStore(t.TempDir())
	assert.NoError(t, err)

	t.Run("save then remove leaves nothing on disk", func(t *testing.T) {
		name, err := store.Save("resume.pdf", []byte("%PDF-1.7 body"))
		assert.NoError(t, err)
		assert.Equal(t, ".pdf", filepath.Ext(name))

		_, err = os.Stat(filepath.Join(store.Dir(), name))
		assert.NoError(t, err)

		assert.NoError(t, store.Remove(name))

		_, err = os.Stat(filepath.Join(store.Dir(), name))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("removing an already-missing artifact is not an error", func(t *testing.T) {
		assert.NoError(t, store.Remove("never-stored.pdf"))
	})

	t.Run("remove does not reach outside the store dir", func(t *testing.T) {
		outside := filepath.Join(t.TempDir(), "victim.txt")
		assert.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

		assert.NoError(t, store.Remove("../../"+outside))

		_, err := os.Stat(outside)
		assert.NoError(t, err)
	})
}
