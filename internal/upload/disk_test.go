package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreWritesFileAndReturnsURLPath(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store := NewDiskStore(root)

	ref, err := store.Store(strings.NewReader("image bytes"), "cat.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "/uploads/"))
	assert.True(t, strings.HasSuffix(ref, "-cat.png"))

	// The root was created on demand and holds the file.
	data, err := os.ReadFile(filepath.Join(root, strings.TrimPrefix(ref, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(data))
}

func TestStoreNamesAreCollisionResistant(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	ref1, err := store.Store(strings.NewReader("a"), "same.png")
	require.NoError(t, err)
	ref2, err := store.Store(strings.NewReader("b"), "same.png")
	require.NoError(t, err)

	assert.NotEqual(t, ref1, ref2)
}

func TestStoreSanitizesOriginalName(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	ref, err := store.Store(strings.NewReader("x"), "../../etc/pass wd?.png")
	require.NoError(t, err)

	assert.NotContains(t, ref, "..")
	assert.NotContains(t, ref, " ")
	assert.NotContains(t, ref, "?")
}
