package translations

import (
	"context"
	"errors"
	"slices"

	"github.com/spf13/afero"

	"github.com/zamoon6/greetsync/internal/greetings"
	"github.com/zamoon6/greetsync/internal/perf"
)

type Status string

const (
	StatusOK           Status = "ok"
	StatusMissingFile  Status = "missing-file"
	StatusInvalid      Status = "invalid"
	StatusFieldMissing Status = "field-missing"
	StatusOutOfDate    Status = "out-of-date"
)

// Inspection is the read-only counterpart of Result.
type Inspection struct {
	Code   string
	Path   string
	Status Status
	Err    error
}

// InspectFile reports whether the file at path already holds exactly messages under field.
// It never writes.
func InspectFile(ctx context.Context, fs afero.Fs, path string, field string, messages []string) (Status, error) {
	ctx, span := perf.StartSpan(ctx, "io.translations.inspect")
	defer span.End()

	document, _, err := readDocument(ctx, fs, path, false)
	if err != nil {
		var notFound *FileNotFoundError
		if errors.As(err, &notFound) {
			return StatusMissingFile, err
		}
		return StatusInvalid, err
	}

	stored, err := ReadMessages(document, fieldOrDefault(field))
	switch {
	case errors.Is(err, ErrFieldMissing):
		return StatusFieldMissing, nil
	case errors.Is(err, ErrFieldMalformed):
		return StatusOutOfDate, nil
	case err != nil:
		return StatusInvalid, &InvalidFileError{Path: path, Err: err}
	}

	if !slices.Equal(stored, messages) {
		return StatusOutOfDate, nil
	}
	return StatusOK, nil
}

// InspectAll runs InspectFile for every language of table, in table order.
func InspectAll(ctx context.Context, fs afero.Fs, dir Dir, table *greetings.Table, field string, observe func(Inspection)) []Inspection {
	out := make([]Inspection, 0, table.Len())
	for _, lang := range table.Languages() {
		path := dir.FilePath(lang.Code)
		status, err := InspectFile(ctx, fs, path, field, lang.Messages)
		inspection := Inspection{Code: lang.Code, Path: path, Status: status, Err: err}
		out = append(out, inspection)
		if observe != nil {
			observe(inspection)
		}
	}
	return out
}
