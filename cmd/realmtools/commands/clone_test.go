package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/realmtools/parser"
)

const testRealmJSON = `{
  "id": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee",
  "realm": "ajax",
  "defaultRole": {
    "id": "11111111-1111-1111-1111-111111111111",
    "name": "default-roles-ajax",
    "containerId": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"
  },
  "clients": [
    {"id": "22222222-2222-2222-2222-222222222222", "clientId": "web-app", "secret": "**********"}
  ]
}`

func TestSetupCloneFlags(t *testing.T) {
	fs, flags := SetupCloneFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "", flags.Name)
		assert.Equal(t, "", flags.OldName)
		assert.Equal(t, "", flags.Output)
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-n", "ajax-dev", "-o", "dev.json", "-q", "ajax-realm.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "ajax-dev", flags.Name)
		assert.Equal(t, "dev.json", flags.Output)
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "ajax-realm.json", fs.Arg(0))
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupCloneFlags()
		args := []string{"--name", "ajax-dev", "--old", "ajax", "--output", "out.json", "--quiet", "in.json"}
		require.NoError(t, fs2.Parse(args))

		assert.Equal(t, "ajax-dev", flags2.Name)
		assert.Equal(t, "ajax", flags2.OldName)
		assert.Equal(t, "out.json", flags2.Output)
		assert.True(t, flags2.Quiet, "expected Quiet to be true")
	})
}

func TestHandleClone_NoArgs(t *testing.T) {
	err := HandleClone([]string{})
	assert.Error(t, err)
}

func TestHandleClone_Help(t *testing.T) {
	err := HandleClone([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleClone_FileNotFound(t *testing.T) {
	err := HandleClone([]string{"-q", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}

func TestHandleClone_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ajax-realm.json")
	output := filepath.Join(dir, "dev-realm.json")
	require.NoError(t, os.WriteFile(input, []byte(testRealmJSON), 0o644))

	err := HandleClone([]string{"-q", "-n", "ajax-dev", "-o", output, input})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "ajax-dev", doc["realm"])
	assert.NotEqual(t, "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", doc["id"])

	client := doc["clients"].([]any)[0].(map[string]any)
	_, hasSecret := client["secret"]
	assert.False(t, hasSecret, "masked secret should be removed")
}

func TestHandleClone_RefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ajax-realm.json")
	require.NoError(t, os.WriteFile(input, []byte(testRealmJSON), 0o644))

	err := HandleClone([]string{"-q", "-n", "ajax-dev", "-o", input, input})
	assert.Error(t, err)
}

func TestDefaultCloneOutput(t *testing.T) {
	assert.Equal(t, "ajax-dev-realm.json", DefaultCloneOutput("ajax-dev", parser.SourceFormatJSON))
	assert.Equal(t, "ajax-dev-realm.yaml", DefaultCloneOutput("ajax-dev", parser.SourceFormatYAML))
}
