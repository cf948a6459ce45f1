package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhisheklearn12/kvstore/pkg/kv"
)

func TestParseLoadMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    LoadMode
		wantErr bool
	}{
		{"", LoadMerge, false},
		{"merge", LoadMerge, false},
		{"MERGE", LoadMerge, false},
		{" replace ", LoadReplace, false},
		{"wipe", LoadMerge, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run("input="+tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseLoadMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidLoadMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []kv.Entry
	}{
		{
			name:  "plain lines",
			input: "a=1\nb=2\n",
			want:  []kv.Entry{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
		},
		{
			name:  "value keeps extra separators",
			input: "url=http://example.com?x=1\n",
			want:  []kv.Entry{{Key: "url", Value: "http://example.com?x=1"}},
		},
		{
			name:  "lines without separator are skipped",
			input: "garbage\na=1\n\n",
			want:  []kv.Entry{{Key: "a", Value: "1"}},
		},
		{
			name:  "empty value",
			input: "a=\n",
			want:  []kv.Entry{{Key: "a", Value: ""}},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, decodeEntries([]byte(tt.input)))
		})
	}
}

// TestEncodeDecodeRoundTrip checks that encode followed by decode restores
// every pair when keys and values are free of '=' and newlines.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	entries := []kv.Entry{
		{Key: "name", Value: "Abhishek"},
		{Key: "lang", Value: "C++"},
		{Key: "empty", Value: ""},
	}

	assert.ElementsMatch(t, entries, decodeEntries(encodeEntries(entries)))
}
