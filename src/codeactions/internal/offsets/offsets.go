// Package offsets converts between byte offsets in document text and LSP (UTF-16) positions.
// The conversion rules follow the gopls protocol mapper: a position inside a surrogate pair
// resolves to the start of the rune, and \r|\n is treated as |\r\n.
package offsets

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.lsp.dev/protocol"
)

// Mapper converts offsets for one immutable text.
type Mapper struct {
	content   []byte
	lineStart []int
	nonASCII  bool
}

// New indexes content. The returned Mapper must not be used after content changes.
func New(content string) *Mapper {
	m := &Mapper{content: []byte(content), lineStart: []int{0}}
	for i, b := range m.content {
		if b == '\n' {
			m.lineStart = append(m.lineStart, i+1)
		}
		if b >= utf8.RuneSelf {
			m.nonASCII = true
		}
	}
	return m
}

// Len returns the length of the text in bytes.
func (m *Mapper) Len() int {
	return len(m.content)
}

// Offset converts a UTF-16 position into a byte offset.
func (m *Mapper) Offset(p protocol.Position) (int, error) {
	if int(p.Line) > len(m.lineStart) {
		return 0, fmt.Errorf("line number %d out of range 0-%d", p.Line, len(m.lineStart))
	}
	if int(p.Line) == len(m.lineStart) {
		if p.Character == 0 {
			return len(m.content), nil
		}
		return 0, fmt.Errorf("column is beyond end of file")
	}

	start := m.lineStart[p.Line]
	rest := m.content[start:]
	col8 := 0
	for col16 := 0; col16 < int(p.Character); col16++ {
		r, sz := utf8.DecodeRune(rest)
		switch {
		case sz == 0:
			return 0, fmt.Errorf("column is beyond end of file")
		case r == '\n':
			return 0, fmt.Errorf("column is beyond end of line")
		case sz == 1 && r == utf8.RuneError:
			return 0, fmt.Errorf("text contains invalid UTF-8")
		}
		rest = rest[sz:]
		if r >= 0x10000 {
			col16++
			if col16 == int(p.Character) {
				break
			}
		}
		col8 += sz
	}
	return start + col8, nil
}

// Position converts a byte offset into a UTF-16 position.
func (m *Mapper) Position(offset int) (protocol.Position, error) {
	if offset < 0 || offset > len(m.content) {
		return protocol.Position{}, fmt.Errorf("invalid offset %d (want 0-%d)", offset, len(m.content))
	}

	line := sort.Search(len(m.lineStart), func(i int) bool { return offset < m.lineStart[i] }) - 1
	start := m.lineStart[line]

	col16 := offset - start
	if m.nonASCII {
		col16 = utf16Len(m.content[start:offset])
	}

	eol := len(m.content)
	if line+1 < len(m.lineStart) {
		eol = m.lineStart[line+1] - 1
	}
	if offset == eol && offset > 0 && m.content[offset-1] == '\r' {
		col16--
	}
	return protocol.Position{Line: uint32(line), Character: uint32(col16)}, nil
}

// Range converts a pair of byte offsets into a protocol range. Offsets outside the text are clamped.
func (m *Mapper) Range(start, end int) protocol.Range {
	s, _ := m.Position(m.clamp(start))
	e, _ := m.Position(m.clamp(end))
	return protocol.Range{Start: s, End: e}
}

func (m *Mapper) clamp(offset int) int {
	return min(max(offset, 0), len(m.content))
}

func utf16Len(s []byte) int {
	n := 0
	for len(s) > 0 {
		n++
		if s[0] < utf8.RuneSelf {
			s = s[1:]
			continue
		}
		r, size := utf8.DecodeRune(s)
		if r >= 0x10000 {
			n++
		}
		s = s[size:]
	}
	return n
}

// ContentChanges computes incremental change events turning before into after.
// Events are ordered from the end of the text to the start, so each range stays valid
// in the document state produced by the events preceding it.
func ContentChanges(before, after string) []protocol.TextDocumentContentChangeEvent {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupEfficiency(dmp.DiffMain(before, after, false))

	type edit struct {
		start, end int
		text       string
	}
	edits := make([]edit, 0, len(diffs))
	offset := 0
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			offset += len(d.Text)
		case diffmatchpatch.DiffDelete:
			edits = append(edits, edit{start: offset, end: offset + len(d.Text)})
			offset += len(d.Text)
		case diffmatchpatch.DiffInsert:
			edits = append(edits, edit{start: offset, end: offset, text: d.Text})
		}
	}

	m := New(before)
	changes := make([]protocol.TextDocumentContentChangeEvent, 0, len(edits))
	for i := len(edits) - 1; i >= 0; i-- {
		changes = append(changes, protocol.TextDocumentContentChangeEvent{
			Range: m.Range(edits[i].start, edits[i].end),
			Text:  edits[i].text,
		})
	}
	return changes
}
