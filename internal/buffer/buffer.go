package buffer

import (
	"bufio"
	"io"
	"strings"
)

// DefaultTabStop is the column width of a tab when none is configured.
const DefaultTabStop = 8

// Buffer is an ordered sequence of text rows. Row order is document order
// and the buffer is the single source of truth for file contents.
type Buffer struct {
	rows    []*Row
	tabStop int

	// dirty counts mutations since the last load or save.
	dirty int
}

// New creates an empty buffer. A tabStop < 1 falls back to DefaultTabStop.
func New(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &Buffer{tabStop: tabStop}
}

// NewFromString creates a buffer holding the given text, split on newlines.
// The buffer starts clean.
func NewFromString(text string, tabStop int) *Buffer {
	b, _ := NewFromReader(strings.NewReader(text), tabStop)
	return b
}

// NewFromReader creates a buffer from line-oriented input. Trailing CR and
// LF bytes are stripped from each line. The buffer starts clean.
func NewFromReader(r io.Reader, tabStop int) (*Buffer, error) {
	b := New(tabStop)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			b.rows = append(b.rows, newRow(strings.TrimRight(line, "\r\n"), b.tabStop))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	b.dirty = 0
	return b, nil
}

// NumRows returns the number of rows in the buffer.
func (b *Buffer) NumRows() int {
	return len(b.rows)
}

// Row returns the row at index i, or nil when i is out of range.
func (b *Buffer) Row(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

// RowLen returns the raw length of row i, or 0 when i is out of range.
// The append position one past the last row therefore reads as empty.
func (b *Buffer) RowLen(i int) int {
	if r := b.Row(i); r != nil {
		return r.Len()
	}
	return 0
}

// TabStop returns the configured tab width.
func (b *Buffer) TabStop() int {
	return b.tabStop
}

// Dirty returns the number of mutations since the last load or save.
func (b *Buffer) Dirty() int {
	return b.dirty
}

// Modified reports whether the buffer has unsaved changes.
func (b *Buffer) Modified() bool {
	return b.dirty > 0
}

// MarkClean resets the dirty counter, typically after a successful save.
func (b *Buffer) MarkClean() {
	b.dirty = 0
}

// InsertRow inserts a new row holding text at index at. An index outside
// [0, NumRows] is clamped so the row lands at the nearest end.
func (b *Buffer) InsertRow(at int, text string) {
	if at < 0 {
		at = 0
	}
	if at > len(b.rows) {
		at = len(b.rows)
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = newRow(text, b.tabStop)
	b.dirty++
}

// DeleteRow removes the row at index at. Out-of-range indices are ignored.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	copy(b.rows[at:], b.rows[at+1:])
	b.rows[len(b.rows)-1] = nil
	b.rows = b.rows[:len(b.rows)-1]
	b.dirty++
}

// InsertChar inserts byte c into row at position pos. The position is
// clamped to [0, row length]; an invalid row index is ignored.
func (b *Buffer) InsertChar(row, pos int, c byte) {
	r := b.Row(row)
	if r == nil {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(r.chars) {
		pos = len(r.chars)
	}
	r.chars = append(r.chars, 0)
	copy(r.chars[pos+1:], r.chars[pos:])
	r.chars[pos] = c
	r.update(b.tabStop)
	b.dirty++
}

// DeleteChar removes the byte at position pos from row. Out-of-range
// positions and invalid row indices are ignored.
func (b *Buffer) DeleteChar(row, pos int) {
	r := b.Row(row)
	if r == nil || pos < 0 || pos >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:pos], r.chars[pos+1:]...)
	r.update(b.tabStop)
	b.dirty++
}

// AppendString concatenates text onto the end of row. Used when merging a
// deleted line into its predecessor. An invalid row index is ignored.
func (b *Buffer) AppendString(row int, text string) {
	r := b.Row(row)
	if r == nil {
		return
	}
	r.chars = append(r.chars, text...)
	r.update(b.tabStop)
	b.dirty++
}

// SplitRow truncates row at position pos and inserts the removed tail as a
// new row directly below. The position is clamped to [0, row length]; an
// invalid row index is ignored.
func (b *Buffer) SplitRow(row, pos int) {
	r := b.Row(row)
	if r == nil {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(r.chars) {
		pos = len(r.chars)
	}

	tail := string(r.chars[pos:])
	r.chars = r.chars[:pos:pos]
	r.update(b.tabStop)

	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = newRow(tail, b.tabStop)
	b.dirty++
}

// Contents flattens the buffer back to file form: every row's raw bytes
// followed by a newline. A pure read with no side effects.
func (b *Buffer) Contents() string {
	var sb strings.Builder
	n := 0
	for _, r := range b.rows {
		n += len(r.chars) + 1
	}
	sb.Grow(n)
	for _, r := range b.rows {
		sb.Write(r.chars)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderColumn converts a character index within row into a render column,
// accounting for tab expansion left of the cursor. Indices past the end of
// the row convert as if at the end.
func (b *Buffer) RenderColumn(row, cx int) int {
	r := b.Row(row)
	if r == nil {
		return 0
	}
	rx := 0
	for i := 0; i < cx && i < len(r.chars); i++ {
		if r.chars[i] == '\t' {
			rx += b.tabStop - 1 - rx%b.tabStop
		}
		rx++
	}
	return rx
}
