package translations

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// MergeField sets field on the top-level object of document to an object mapping "0", "1", ...
// to messages, in order, replacing any previous value wholesale. Every other key keeps its
// value, raw bytes and position; a new field is appended after the existing keys.
// The result is indented with two spaces and keeps non-ASCII text unescaped.
func MergeField(document []byte, field string, messages []string) ([]byte, error) {
	if err := validateDocument(document); err != nil {
		return nil, err
	}

	raw, err := EncodeMessages(messages)
	if err != nil {
		return nil, err
	}

	merged, err := sjson.SetRawBytes(document, fieldPath(field), raw)
	if err != nil {
		return nil, err
	}

	return pretty.PrettyOptions(merged, prettyOptions), nil
}

// ReadMessages returns the strings stored under field, ordered by their numeric keys.
func ReadMessages(document []byte, field string) ([]string, error) {
	if err := validateDocument(document); err != nil {
		return nil, err
	}

	value := gjson.GetBytes(document, fieldPath(field))
	if !value.Exists() {
		return nil, ErrFieldMissing
	}
	if !value.IsObject() {
		return nil, ErrFieldMalformed
	}

	byKey := make(map[string]string)
	malformed := false
	value.ForEach(func(key, item gjson.Result) bool {
		if item.Type != gjson.String {
			malformed = true
			return false
		}
		byKey[key.String()] = item.String()
		return true
	})
	if malformed {
		return nil, ErrFieldMalformed
	}

	messages := make([]string, 0, len(byKey))
	for i := 0; i < len(byKey); i++ {
		message, ok := byKey[strconv.Itoa(i)]
		if !ok {
			return nil, ErrFieldMalformed
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// EncodeMessages renders messages as a JSON object keyed by their stringified index.
func EncodeMessages(messages []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, message := range messages {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"` + strconv.Itoa(i) + `":`)

		encoded, err := encodeString(message)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(value string) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func validateDocument(document []byte) error {
	if !utf8.Valid(document) {
		return ErrNotUTF8
	}
	if !gjson.ValidBytes(document) {
		return ErrNotJSON
	}
	root := gjson.ParseBytes(document)
	if !root.IsObject() {
		return ErrNotObject
	}
	return checkDuplicateKeys(root)
}

// checkDuplicateKeys rejects objects that repeat a top-level key. Readers disagree on which
// copy wins, so such a file cannot be updated safely.
func checkDuplicateKeys(root gjson.Result) error {
	seen := make(map[string]bool)
	duplicate, found := "", false
	root.ForEach(func(key, _ gjson.Result) bool {
		name := key.String()
		if seen[name] {
			duplicate, found = name, true
			return false
		}
		seen[name] = true
		return true
	})
	if found {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, duplicate)
	}
	return nil
}

// fieldPath escapes field so gjson/sjson treat it as a single literal key.
func fieldPath(field string) string {
	var sb strings.Builder
	for _, r := range field {
		switch r {
		case '\\', '.', '*', '?', ':', '|', '#', '@', '!', '=', '<', '>', '%':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
