package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupInspectFlags(t *testing.T) {
	fs, flags := SetupInspectFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatText, flags.Format)
		assert.True(t, flags.ValidateStructure, "expected ValidateStructure to be true by default")
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-f", "json", "-q", "ajax-realm.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "json", flags.Format)
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, "ajax-realm.json", fs.Arg(0))
	})
}

func TestHandleInspect_NoArgs(t *testing.T) {
	err := HandleInspect([]string{})
	assert.Error(t, err)
}

func TestHandleInspect_Help(t *testing.T) {
	err := HandleInspect([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleInspect_InvalidFormat(t *testing.T) {
	err := HandleInspect([]string{"-f", "xml", "ajax-realm.json"})
	assert.Error(t, err)
}

func TestHandleInspect_File(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "ajax-realm.json")
	require.NoError(t, os.WriteFile(input, []byte(testRealmJSON), 0o644))

	assert.NoError(t, HandleInspect([]string{"-q", input}))
	assert.NoError(t, HandleInspect([]string{"-f", "json", input}))
	assert.NoError(t, HandleInspect([]string{"-f", "yaml", input}))
}

func TestHandleInspect_FileNotFound(t *testing.T) {
	err := HandleInspect([]string{filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)
}
