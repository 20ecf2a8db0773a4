// Package commands provides CLI command handlers for realmtools.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	realmtools "github.com/erraggy/realmtools"
	"github.com/erraggy/realmtools/parser"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// StdoutFilePath is the special output path used to indicate writing to stdout.
const StdoutFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(bytes))
	return nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	// Get absolute path of output file
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		if inputPath == StdinFilePath {
			continue
		}
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}

		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
// This prevents symlink attacks where a symlink could redirect output to an unintended location.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		// File doesn't exist yet — safe to write.
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// MarshalDocument marshals a realm document to bytes in the specified format
func MarshalDocument(doc map[string]any, format parser.SourceFormat) ([]byte, error) {
	if format == parser.SourceFormatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}

// FormatRealmPath returns a display-friendly path for the realm export.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatRealmPath(realmPath string) string {
	if realmPath == StdinFilePath {
		return "<stdin>"
	}
	return realmPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputRealmHeader outputs the common realm export header to stderr.
// This includes realmtools version, export path, and realm name.
func OutputRealmHeader(realmPath, realmName string) {
	Writef(os.Stderr, "realmtools version: %s\n", realmtools.Version())
	Writef(os.Stderr, "Realm Export: %s\n", FormatRealmPath(realmPath))
	Writef(os.Stderr, "Realm: %s\n", realmName)
}

// OutputRealmStats outputs the common realm statistics to stderr.
// This includes source size, entity counts, and load time.
func OutputRealmStats(sourceSize int64, stats parser.RealmStats, loadTime any) {
	Writef(os.Stderr, "Source Size: %s\n", parser.FormatBytes(sourceSize))
	Writef(os.Stderr, "Clients: %d\n", stats.ClientCount)
	Writef(os.Stderr, "Client Scopes: %d\n", stats.ClientScopeCount)
	Writef(os.Stderr, "Realm Roles: %d\n", stats.RealmRoleCount)
	Writef(os.Stderr, "Client Roles: %d\n", stats.ClientRoleCount)
	Writef(os.Stderr, "Groups: %d\n", stats.GroupCount)
	Writef(os.Stderr, "Users: %d\n", stats.UserCount)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}
