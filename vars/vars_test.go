package vars

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/injectkit/loader"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromMap(t *testing.T) {
	l := FromMap(map[string]string{"image": "nginx:1.27"})

	got, err := l.Load(context.Background(), "image")
	require.NoError(t, err)
	assert.Equal(t, "nginx:1.27", got)

	_, err = l.Load(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, loader.IsNotFound(err))
}

func TestFromFile_YAML(t *testing.T) {
	path := writeFile(t, "values.yaml", "image: nginx:1.27\nreplicas: 3\n")

	l, err := FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	got, err := l.Load(context.Background(), "image")
	require.NoError(t, err)
	assert.Equal(t, "nginx:1.27", got)

	// Non-string scalars are stringified.
	got, err = l.Load(context.Background(), "replicas")
	require.NoError(t, err)
	assert.Equal(t, "3", got)
}

func TestFromFile_TOML(t *testing.T) {
	path := writeFile(t, "values.toml", "image = \"nginx:1.27\"\nport = 8080\n")

	l, err := FromFile(path)
	require.NoError(t, err)

	got, err := l.Load(context.Background(), "image")
	require.NoError(t, err)
	assert.Equal(t, "nginx:1.27", got)

	got, err = l.Load(context.Background(), "port")
	require.NoError(t, err)
	assert.Equal(t, "8080", got)
}

func TestFromFile_JSON(t *testing.T) {
	path := writeFile(t, "values.json", `{"image": "nginx:1.27"}`)

	l, err := FromFile(path)
	require.NoError(t, err)

	got, err := l.Load(context.Background(), "image")
	require.NoError(t, err)
	assert.Equal(t, "nginx:1.27", got)
}

func TestFromFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "values.ini", "image=nginx\n")

	_, err := FromFile(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported vars file extension")
}

func TestFromFile_Missing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestFromFile_MalformedYAML(t *testing.T) {
	path := writeFile(t, "values.yaml", "image: [unclosed\n")

	_, err := FromFile(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse YAML")
}
