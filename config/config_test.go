package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Empty(t, cfg.Output)
	assert.False(t, cfg.Watch)
	assert.NotNil(t, cfg.Vars)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "injectkit.toml")
	content := `
output = "rendered.conf"
watch = true

[vars]
app = "deploy.yaml"
net = "network.toml"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rendered.conf", cfg.Output)
	assert.True(t, cfg.Watch)
	assert.Equal(t, map[string]string{"app": "deploy.yaml", "net": "network.toml"}, cfg.Vars)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INJECTKIT_OUTPUT", "/tmp/out.conf")
	t.Setenv("INJECTKIT_WATCH", "1")
	t.Setenv("INJECTKIT_VERBOSE", "true")

	cfg := Default()
	cfg.LoadFromEnv()

	assert.Equal(t, "/tmp/out.conf", cfg.Output)
	assert.True(t, cfg.Watch)
	assert.True(t, cfg.Verbose)
}

func TestValidate_BadVarsTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		ok   bool
	}{
		{name: "lowercase", tag: "app", ok: true},
		{name: "digits", tag: "app2", ok: true},
		{name: "uppercase", tag: "App", ok: false},
		{name: "underscore", tag: "my_vars", ok: false},
		{name: "empty", tag: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Vars[tt.tag] = "values.yaml"
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidate_EmptyVarsPath(t *testing.T) {
	cfg := Default()
	cfg.Vars["app"] = ""
	assert.Error(t, cfg.Validate())
}
