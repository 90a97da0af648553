package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stadtwache/stadtwache-api/models"
)

func TestLocal_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	content := "%PDF-1.4 binary\x00payload"
	require.NoError(t, store.Save(ctx, "cv_1.pdf", strings.NewReader(content), "application/pdf"))

	rc, err := store.Open(ctx, "cv_1.pdf")
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	assert.Error(t, store.Save(ctx, "cv_1.pdf", strings.NewReader("other"), ""))

	require.NoError(t, store.Delete(ctx, "cv_1.pdf"))
	_, err = store.Open(ctx, "cv_1.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "cv_1.pdf"), ErrFileNotFound)
}

func TestLocal_OpenRejectsTraversal(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("secret"), 0o644))

	store, err := NewLocal(filepath.Join(root, "uploads"))
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(root, "uploads", "nested"), 0o755))

	for _, name := range []string{"../secret.txt", "..", "nested", "missing.png", ""} {
		_, err := store.Open(ctx, name)
		assert.ErrorIs(t, err, ErrFileNotFound, name)
		assert.ErrorIs(t, err, models.ErrNotFound, name)
	}
}

func TestLocal_SaveRejectsTraversal(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	err = store.Save(context.Background(), "../escape.png", strings.NewReader("x"), "")
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}
