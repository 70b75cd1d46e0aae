package greetings

import (
	"bytes"
	"errors"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type tableFile struct {
	Languages []Language `yaml:"languages"`
}

// Resolve returns the built-in table when path is empty, and the table loaded from path otherwise.
func Resolve(fs afero.Fs, path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(fs, path)
}

// LoadFile reads a YAML greeting table of the form
//
//	languages:
//	  - code: de
//	    messages: ["...", "..."]
func LoadFile(fs afero.Fs, path string) (*Table, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, &TableError{Path: path, Reason: "cannot read file", Err: err}
	}
	return Parse(data, path)
}

func Parse(data []byte, path string) (*Table, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file tableFile
	if err := decoder.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &TableError{Path: path, Reason: "file is empty"}
		}
		return nil, &TableError{Path: path, Reason: "cannot parse YAML", Err: err}
	}

	table, err := NewTable(file.Languages)
	if err != nil {
		var tableErr *TableError
		if errors.As(err, &tableErr) {
			tableErr.Path = path
		}
		return nil, err
	}
	return table, nil
}
