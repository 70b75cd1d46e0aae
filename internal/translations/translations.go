// Package translations merges greeting sets into per-language JSON translation files.
package translations

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zamoon6/greetsync/internal/constants"
	"github.com/zamoon6/greetsync/internal/perf"
)

// Dir is a directory holding one <code>.json file per language.
type Dir struct {
	Path string
}

func NewDir(path string) Dir {
	return Dir{Path: path}
}

func (d Dir) FileName(code string) string {
	return code + constants.TranslationFileExt
}

func (d Dir) FilePath(code string) string {
	return filepath.Join(filepath.FromSlash(d.Path), d.FileName(code))
}

type UpdateOptions struct {
	// Field defaults to constants.DefaultMessagesField.
	Field string
	// CreateMissing starts from an empty object instead of failing when the file does not exist.
	CreateMissing bool
	// DryRun performs every step except the final write.
	DryRun bool
}

func (opts UpdateOptions) field() string {
	return fieldOrDefault(opts.Field)
}

func fieldOrDefault(field string) string {
	if field == "" {
		return constants.DefaultMessagesField
	}
	return field
}

// Change describes what UpdateFile did (or would do, in a dry run) to one file.
type Change struct {
	Path      string
	Created   bool
	Unchanged bool
	Written   bool
	Size      int
}

// UpdateFile replaces opts.Field in the JSON object stored at path with messages and writes
// the document back to the same path.
func UpdateFile(ctx context.Context, fs afero.Fs, path string, messages []string, opts UpdateOptions) (change Change, err error) {
	ctx, span := perf.StartSpan(ctx, "io.translations.update", attribute.String("path", path))
	defer func() {
		span.SetAttributes(attribute.Bool("success", err == nil), attribute.Bool("written", change.Written))
		span.End()
	}()

	change.Path = path

	document, created, err := readDocument(ctx, fs, path, opts.CreateMissing)
	if err != nil {
		return change, err
	}
	change.Created = created

	merged, err := MergeField(document, opts.field(), messages)
	if err != nil {
		return change, &InvalidFileError{Path: path, Err: err}
	}
	change.Size = len(merged)
	change.Unchanged = !created && bytes.Equal(document, merged)

	if opts.DryRun || change.Unchanged {
		return change, nil
	}

	if err := writeDocument(ctx, fs, path, merged); err != nil {
		return change, &WriteError{Path: path, Err: err}
	}
	change.Written = true
	return change, nil
}

func readDocument(ctx context.Context, fs afero.Fs, path string, createMissing bool) ([]byte, bool, error) {
	_, span := perf.StartSpan(ctx, "io.translations.read", attribute.String("path", path))
	defer span.End()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to stat translation file %s", path)
	}
	if !exists {
		if createMissing {
			return []byte("{}"), true, nil
		}
		return nil, false, &FileNotFoundError{Path: path}
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read translation file %s", path)
	}
	return data, false, nil
}

func writeDocument(ctx context.Context, fs afero.Fs, path string, data []byte) error {
	_, span := perf.StartSpan(ctx, "io.translations.write", attribute.String("path", path), attribute.Int("bytes", len(data)))
	defer span.End()

	return writeFileAtomic(fs, path, data, fileMode(fs, path))
}

func fileMode(fs afero.Fs, path string) os.FileMode {
	info, err := fs.Stat(path)
	if err != nil {
		return defaultFileMode
	}
	return info.Mode().Perm()
}
