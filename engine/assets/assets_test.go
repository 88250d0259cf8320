package assets

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

func TestTOMLLoaderKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, os.WriteFile(path, []byte(`name = "box"`), 0o644))

	loader := TOMLLoader[sample]{Defaults: func() sample { return sample{Count: 7} }}
	got, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "box", Count: 7}, got)
}

func TestTOMLLoaderStrict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"box\"\ncolour = 3\n"), 0o644))

	_, err := TOMLLoader[sample]{Strict: true}.Load(path)
	assert.Error(t, err)
	_, err = TOMLLoader[sample]{}.Load(path)
	assert.NoError(t, err)
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	other := filepath.Join(dir, "other.toml")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\n"), 0o644))

	w, err := NewWatcher()
	require.NoError(t, err)
	defer w.Close()
	require.NoError(t, w.Watch(path))

	require.NoError(t, os.WriteFile(other, []byte("b = 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("a = 2\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case changed := <-w.Changes():
		assert.Equal(t, abs, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())

	_, open := <-w.Changes()
	assert.False(t, open)
	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "x.toml")))
}
