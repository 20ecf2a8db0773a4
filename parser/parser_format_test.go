package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		size     int64
		expected string
	}{
		{name: "negative", size: -1, expected: "-1 B"},
		{name: "zero", size: 0, expected: "0 B"},
		{name: "bytes", size: 512, expected: "512 B"},
		{name: "kibibytes", size: 2048, expected: "2.0 KiB"},
		{name: "mebibytes", size: 5 * 1024 * 1024, expected: "5.0 MiB"},
		{name: "gibibytes", size: 3 * 1024 * 1024 * 1024, expected: "3.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.size))
		})
	}
}

func TestDetectFormatFromPath(t *testing.T) {
	tests := []struct {
		path     string
		expected SourceFormat
	}{
		{path: "realm.json", expected: SourceFormatJSON},
		{path: "realm.yaml", expected: SourceFormatYAML},
		{path: "realm.yml", expected: SourceFormatYAML},
		{path: "realm.txt", expected: SourceFormatUnknown},
		{path: "realm", expected: SourceFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectFormatFromPath(tt.path))
		})
	}
}

func TestDetectFormatFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected SourceFormat
	}{
		{name: "json object", content: `{"realm": "ajax"}`, expected: SourceFormatJSON},
		{name: "json with leading whitespace", content: "\n\t {\"realm\": \"ajax\"}", expected: SourceFormatJSON},
		{name: "json array", content: `[1, 2]`, expected: SourceFormatJSON},
		{name: "yaml", content: "realm: ajax\n", expected: SourceFormatYAML},
		{name: "empty", content: "", expected: SourceFormatUnknown},
		{name: "whitespace only", content: "  \n\t", expected: SourceFormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectFormatFromContent([]byte(tt.content)))
		})
	}
}

func TestSourceFormatExtension(t *testing.T) {
	assert.Equal(t, "json", SourceFormatJSON.Extension())
	assert.Equal(t, "yaml", SourceFormatYAML.Extension())
	assert.Equal(t, "json", SourceFormatUnknown.Extension())
}
