package translations

import (
	"errors"
	"fmt"
)

var (
	// ErrNotUTF8 marks documents that are not valid UTF-8 text.
	ErrNotUTF8 = errors.New("not valid UTF-8")
	// ErrNotJSON marks documents that are not syntactically valid JSON.
	ErrNotJSON = errors.New("not valid JSON")
	// ErrNotObject marks valid JSON documents whose top level is not an object.
	ErrNotObject = errors.New("top level value is not an object")
	// ErrDuplicateKey marks objects that repeat a top-level key.
	ErrDuplicateKey = errors.New("duplicate top level key")
	// ErrFieldMissing is returned by ReadMessages when the document has no such field.
	ErrFieldMissing = errors.New("field is missing")
	// ErrFieldMalformed is returned by ReadMessages when the field is not an index-keyed object of strings.
	ErrFieldMalformed = errors.New("field is not an index-keyed object of strings")
)

type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("Translation file not found: %s", e.Path)
}

func (e *FileNotFoundError) Is(target error) bool {
	t, ok := target.(*FileNotFoundError)
	if !ok {
		return false
	}
	return e.Path == t.Path
}

type InvalidFileError struct {
	Path string
	Err  error
}

func (e *InvalidFileError) Error() string {
	return fmt.Sprintf("Translation file is invalid: %s: %s", e.Path, e.Err)
}

func (e *InvalidFileError) Unwrap() error {
	return e.Err
}

type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("Translation file cannot be written: %s: %s", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
