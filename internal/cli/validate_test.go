package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand_ValidYAML(t *testing.T) {
	path := writeConfig(t, "pharos.yaml", "level: debug\nformat: json\nname: svc\n")

	out, err := executeCommand("validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "level=debug")
}

func TestValidateCommand_ValidJSON(t *testing.T) {
	path := writeConfig(t, "pharos.json", `{"level":"info","performance":{"enabled":true,"thresholdMs":500}}`)

	out, err := executeCommand("validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestValidateCommand_SchemaViolation(t *testing.T) {
	path := writeConfig(t, "pharos.json", `{"level":"loud"}`)

	out, err := executeCommand("validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "/level")
}

func TestValidateCommand_BadYAML(t *testing.T) {
	path := writeConfig(t, "pharos.yaml", "level: [not, a, level\n")

	_, err := executeCommand("validate", path)
	assert.Error(t, err)
}

func TestValidateCommand_MissingFile(t *testing.T) {
	_, err := executeCommand("validate", "/nonexistent/pharos.yaml")
	assert.Error(t, err)
}
