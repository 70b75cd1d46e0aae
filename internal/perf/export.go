package perf

import (
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
)

const defaultExportFilename = "greetsync-perf.json"

// ExportToFile writes the supplied spans as JSON to <outDir>/greetsync-perf.json.
// String attributes holding absolute paths below baseDir are rewritten relative to it.
//
// Callers should treat a returned error as non-fatal.
func ExportToFile(fs afero.Fs, outDir string, baseDir string, spans []SpanSnapshot) (string, error) {
	if outDir == "" {
		outDir = "."
	}

	if err := fs.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(normalizeForExport(spans, baseDir), "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, defaultExportFilename)
	return path, afero.WriteFile(fs, path, data, 0o644)
}

func normalizeForExport(spans []SpanSnapshot, baseDir string) []SpanSnapshot {
	out := make([]SpanSnapshot, 0, len(spans))
	for _, span := range spans {
		if len(span.Attributes) > 0 {
			attrs := make(map[string]interface{}, len(span.Attributes))
			for key, value := range span.Attributes {
				attrs[key] = normalizeValue(value, baseDir)
			}
			span.Attributes = attrs
		}
		out = append(out, span)
	}
	return out
}

func normalizeValue(value interface{}, baseDir string) interface{} {
	str, ok := value.(string)
	if !ok || baseDir == "" || !filepath.IsAbs(str) {
		return value
	}

	rel, err := filepath.Rel(baseDir, str)
	if err != nil || strings.HasPrefix(rel, "..") {
		return value
	}
	return filepath.ToSlash(rel)
}
