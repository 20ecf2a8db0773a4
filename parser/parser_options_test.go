package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/realmtools/realmerrors"
)

func TestParseWithOptions_NoInput(t *testing.T) {
	_, err := ParseWithOptions()
	require.Error(t, err)
	assert.True(t, errors.Is(err, realmerrors.ErrConfig))
	assert.Contains(t, err.Error(), "no input source specified")
}

func TestParseWithOptions_MultipleInputs(t *testing.T) {
	_, err := ParseWithOptions(
		WithFilePath("realm.json"),
		WithBytes([]byte(`{"realm": "ajax"}`)),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple input sources")
}

func TestParseWithOptions_EmptyPath(t *testing.T) {
	_, err := ParseWithOptions(WithFilePath(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")
}

func TestParseWithOptions_NilReader(t *testing.T) {
	_, err := ParseWithOptions(WithReader(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be nil")
}

func TestParseWithOptions_Bytes(t *testing.T) {
	result, err := ParseWithOptions(WithBytes([]byte(`{"realm": "ajax", "id": "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}`)))
	require.NoError(t, err)
	assert.Equal(t, "ajax", result.RealmName)
}

func TestParseWithOptions_Reader(t *testing.T) {
	result, err := ParseWithOptions(WithReader(strings.NewReader(`{"realm": "ajax"}`)))
	require.NoError(t, err)
	assert.Equal(t, "ajax", result.RealmName)
}

func TestParseWithOptions_SourceName(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(`{"realm": "ajax"}`)),
		WithSourceName("exported-realm.json"),
	)
	require.NoError(t, err)
	assert.Equal(t, "exported-realm.json", result.SourcePath)
}

func TestParseWithOptions_ValidateStructureDisabled(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(`{"realm": "ajax", "clients": "wrong"}`)),
		WithValidateStructure(false),
	)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
}

func TestParseWithOptions_Logger(t *testing.T) {
	logger := &capturingLogger{}
	_, err := ParseWithOptions(
		WithBytes([]byte(`{"realm": "ajax"}`)),
		WithLogger(logger),
	)
	require.NoError(t, err)
	assert.NotEmpty(t, logger.debugs, "parser should log realm detection at debug level")
}

// capturingLogger records debug messages for assertions.
type capturingLogger struct {
	debugs []string
}

func (c *capturingLogger) Debug(msg string, _ ...any) { c.debugs = append(c.debugs, msg) }
func (c *capturingLogger) Info(string, ...any)        {}
func (c *capturingLogger) Warn(string, ...any)        {}
func (c *capturingLogger) Error(string, ...any)       {}
func (c *capturingLogger) With(...any) Logger         { return c }
