// Package greetings holds the per-language greeting sets merged into translation files.
package greetings

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/zamoon6/greetsync/internal/constants"
)

// Language is one entry of a Table: a language code and its ordered greetings.
type Language struct {
	Code     string   `yaml:"code"`
	Messages []string `yaml:"messages"`
}

// Table is an ordered, read-only mapping from language code to greetings.
// Iteration follows insertion order.
type Table struct {
	languages []Language
	index     map[string]int
}

var defaultTable = mustNewTable(builtin)

// Default returns the built-in greeting table.
func Default() *Table {
	return defaultTable
}

// NewTable validates the given languages and builds a table from them.
// The input slice is copied; later changes to it do not affect the table.
func NewTable(languages []Language) (*Table, error) {
	if len(languages) == 0 {
		return nil, &TableError{Reason: "no languages defined"}
	}

	table := &Table{
		languages: make([]Language, 0, len(languages)),
		index:     make(map[string]int, len(languages)),
	}

	for i, lang := range languages {
		code := strings.TrimSpace(lang.Code)
		if err := validateCode(code); err != nil {
			return nil, &TableError{Code: lang.Code, Reason: fmt.Sprintf("entry %d has an invalid language code", i), Err: err}
		}
		if _, seen := table.index[code]; seen {
			return nil, &TableError{Code: code, Reason: "duplicate language code"}
		}
		if len(lang.Messages) != constants.MessagesPerLanguage {
			return nil, &TableError{Code: code, Reason: fmt.Sprintf("has %d messages, want %d", len(lang.Messages), constants.MessagesPerLanguage)}
		}
		for pos, message := range lang.Messages {
			if strings.TrimSpace(message) == "" {
				return nil, &TableError{Code: code, Reason: fmt.Sprintf("message %d is empty", pos)}
			}
		}

		table.index[code] = len(table.languages)
		table.languages = append(table.languages, Language{
			Code:     code,
			Messages: append([]string(nil), lang.Messages...),
		})
	}

	return table, nil
}

func mustNewTable(languages []Language) *Table {
	table, err := NewTable(languages)
	if err != nil {
		panic(err)
	}
	return table
}

func validateCode(code string) error {
	if code == "" {
		return fmt.Errorf("language code is empty")
	}
	if strings.ContainsAny(code, `/\.`) {
		return fmt.Errorf("language code %q contains path characters", code)
	}
	if _, err := language.Parse(code); err != nil {
		return err
	}
	return nil
}

// Len reports the number of languages in the table.
func (table *Table) Len() int {
	return len(table.languages)
}

// Codes returns the language codes in table order.
func (table *Table) Codes() []string {
	codes := make([]string, 0, len(table.languages))
	for _, lang := range table.languages {
		codes = append(codes, lang.Code)
	}
	return codes
}

// Lookup returns a copy of the greetings for code. The second result is false when the
// table has no entry for it.
func (table *Table) Lookup(code string) ([]string, bool) {
	idx, ok := table.index[code]
	if !ok {
		return nil, false
	}
	return append([]string(nil), table.languages[idx].Messages...), true
}

// Languages returns a copy of every entry in table order.
func (table *Table) Languages() []Language {
	out := make([]Language, 0, len(table.languages))
	for _, lang := range table.languages {
		out = append(out, Language{
			Code:     lang.Code,
			Messages: append([]string(nil), lang.Messages...),
		})
	}
	return out
}
