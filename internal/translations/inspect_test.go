package translations

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamoon6/greetsync/internal/greetings"
)

func TestInspectFileStatuses(t *testing.T) {
	messages := []string{"a", "b"}
	tests := []struct {
		name     string
		content  *string
		field    string
		expected Status
		hasErr   bool
	}{
		{name: "up to date", content: ptr(`{"x": 1, "new_year_messages": {"0": "a", "1": "b"}}`), expected: StatusOK},
		{name: "up to date custom field", content: ptr(`{"holiday": {"1": "b", "0": "a"}}`), field: "holiday", expected: StatusOK},
		{name: "missing file", content: nil, expected: StatusMissingFile, hasErr: true},
		{name: "invalid json", content: ptr(`{`), expected: StatusInvalid, hasErr: true},
		{name: "not an object", content: ptr(`[]`), expected: StatusInvalid, hasErr: true},
		{name: "repeated field", content: ptr(`{"new_year_messages": {"0": "a", "1": "b"}, "new_year_messages": {"0": "old"}}`), expected: StatusInvalid, hasErr: true},
		{name: "invalid utf-8", content: ptr("{\"new_year_messages\": {\"0\": \"a\", \"1\": \"b\"}, \"t\": \"\xff\"}"), expected: StatusInvalid, hasErr: true},
		{name: "field missing", content: ptr(`{"x": 1}`), expected: StatusFieldMissing},
		{name: "different text", content: ptr(`{"new_year_messages": {"0": "a", "1": "c"}}`), expected: StatusOutOfDate},
		{name: "extra entry", content: ptr(`{"new_year_messages": {"0": "a", "1": "b", "2": "c"}}`), expected: StatusOutOfDate},
		{name: "malformed field", content: ptr(`{"new_year_messages": ["a", "b"]}`), expected: StatusOutOfDate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			if tc.content != nil {
				require.NoError(t, afero.WriteFile(fs, "de.json", []byte(*tc.content), 0o644))
			}

			status, err := InspectFile(context.Background(), fs, "de.json", tc.field, messages)
			assert.Equal(t, tc.expected, status)
			if tc.hasErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInspectFileInvalidWrapsCause(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "de.json", []byte(`"x"`), 0o644))

	_, err := InspectFile(context.Background(), fs, "de.json", "", []string{"a"})

	var invalid *InvalidFileError
	require.True(t, errors.As(err, &invalid))
	assert.ErrorIs(t, err, ErrNotObject)
}

func TestInspectAllAfterUpdateAllIsClean(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := NewDir("tr")
	table := greetings.Default()
	require.NoError(t, fs.MkdirAll("tr", 0o755))
	for _, code := range table.Codes() {
		require.NoError(t, afero.WriteFile(fs, dir.FilePath(code), []byte(`{}`), 0o644))
	}

	before := InspectAll(context.Background(), fs, dir, table, "", nil)
	require.Len(t, before, 11)
	for _, inspection := range before {
		assert.Equal(t, StatusFieldMissing, inspection.Status, inspection.Code)
	}

	report := UpdateAll(context.Background(), fs, dir, table, UpdateOptions{}, nil)
	require.Empty(t, report.Failed())

	var observed []string
	after := InspectAll(context.Background(), fs, dir, table, "", func(inspection Inspection) {
		observed = append(observed, inspection.Code)
	})
	assert.Equal(t, table.Codes(), observed)
	for _, inspection := range after {
		assert.Equal(t, StatusOK, inspection.Status, inspection.Code)
		assert.NoError(t, inspection.Err)
	}
}

func ptr(value string) *string {
	return &value
}
