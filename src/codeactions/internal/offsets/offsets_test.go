package offsets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		pos     protocol.Position
		offset  int
		wantErr bool
	}{
		{
			name:   "start of second line",
			text:   "sample\ncontent\n",
			pos:    protocol.Position{Line: 1, Character: 0},
			offset: 7,
		},
		{
			name:    "invalid line number",
			text:    "sample\ncontent\n",
			pos:     protocol.Position{Line: 15},
			wantErr: true,
		},
		{
			name:   "end of file",
			text:   "sample\ncontent\n",
			pos:    protocol.Position{Line: 2, Character: 0},
			offset: 15,
		},
		{
			name:    "column beyond end of line",
			text:    "sample\ncontent\n",
			pos:     protocol.Position{Line: 1, Character: 15},
			wantErr: true,
		},
		{
			name:   "surrogate pair counts as two columns",
			text:   "a𐐀b",
			pos:    protocol.Position{Line: 0, Character: 3},
			offset: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.text).Offset(tt.pos)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offset, got)
		})
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		content            string
		substr             string
		wantLine, wantChar uint32
	}{
		{"a𐐀b", "a", 0, 0},
		{"a𐐀b", "𐐀", 0, 1},
		{"a𐐀b", "b", 0, 3},
		{"a𐐀b\r\n", "\n", 0, 4},
		{"a𐐀b\r\nx", "x", 1, 0},
		{"abc\n", "\n", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.content+"/"+tt.substr, func(t *testing.T) {
			got, err := New(tt.content).Position(strings.Index(tt.content, tt.substr))
			require.NoError(t, err)
			assert.Equal(t, protocol.Position{Line: tt.wantLine, Character: tt.wantChar}, got)
		})
	}

	t.Run("invalid offsets", func(t *testing.T) {
		m := New("abc")
		for _, offset := range []int{-1, 100} {
			_, err := m.Position(offset)
			assert.Error(t, err)
		}
	})
}

func TestRange(t *testing.T) {
	m := New("first\nsecond\n")
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 2},
		End:   protocol.Position{Line: 1, Character: 3},
	}, m.Range(2, 9))

	// Clamped to the text bounds.
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 2, Character: 0},
	}, m.Range(-4, 400))
}

func TestContentChanges(t *testing.T) {
	tests := []struct {
		name   string
		before string
		after  string
	}{
		{name: "insert", before: "package main\n", after: "package main\n\nfunc main() {}\n"},
		{name: "delete", before: "a\nb\nc\n", after: "a\nc\n"},
		{name: "replace in middle", before: "import (\n\t\"os\"\n\t\"fmt\"\n)\n", after: "import (\n\t\"fmt\"\n\t\"os\"\n)\n"},
		{name: "multi byte", before: "héllo wörld", after: "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := ContentChanges(tt.before, tt.after)
			require.NotEmpty(t, changes)

			text := tt.before
			for _, c := range changes {
				m := New(text)
				start, err := m.Offset(c.Range.Start)
				require.NoError(t, err)
				end, err := m.Offset(c.Range.End)
				require.NoError(t, err)
				text = text[:start] + c.Text + text[end:]
			}
			assert.Equal(t, tt.after, text)
		})
	}

	t.Run("identical text", func(t *testing.T) {
		assert.Nil(t, ContentChanges("same", "same"))
	})
}
