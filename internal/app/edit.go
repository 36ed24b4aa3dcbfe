package app

import (
	"github.com/kiln-editor/kiln/internal/cursor"
	"github.com/kiln-editor/kiln/internal/key"
)

// insertChar inserts one byte at the cursor. A cursor sitting on the
// append position past the last row grows the document first.
func (s *Session) insertChar(c byte) {
	if s.cur.Y == s.buf.NumRows() {
		s.buf.InsertRow(s.buf.NumRows(), "")
	}
	s.buf.InsertChar(s.cur.Y, s.cur.X, c)
	s.cur.X++
}

// insertNewline splits the current row at the cursor, or inserts an empty
// row above when the cursor is at column 0. The cursor lands on column 0
// of the line below.
func (s *Session) insertNewline() {
	if s.cur.X == 0 {
		s.buf.InsertRow(s.cur.Y, "")
	} else {
		s.buf.SplitRow(s.cur.Y, s.cur.X)
	}
	s.cur.Y++
	s.cur.X = 0
}

// deleteChar removes the byte left of the cursor. At column 0 the current
// row is merged onto the end of the previous one and the cursor moves to
// the join point. A no-op at the very start of the document and on the
// append position past the last row.
func (s *Session) deleteChar() {
	if s.cur.Y == s.buf.NumRows() {
		return
	}
	if s.cur.X == 0 && s.cur.Y == 0 {
		return
	}

	if s.cur.X > 0 {
		s.buf.DeleteChar(s.cur.Y, s.cur.X-1)
		s.cur.X--
		return
	}

	s.cur.X = s.buf.RowLen(s.cur.Y - 1)
	s.buf.AppendString(s.cur.Y-1, s.buf.Row(s.cur.Y).Text())
	s.buf.DeleteRow(s.cur.Y)
	s.cur.Y--
}

// movePage jumps the cursor to the window edge and then steps a full
// screen of rows, letting the per-step movement rules handle clamping.
func (s *Session) movePage(k key.Key) {
	if k == key.KeyPageUp {
		s.cur.Y = s.view.RowOffset()
	} else {
		s.cur.Y = s.view.RowOffset() + s.view.Rows() - 1
		if s.cur.Y > s.buf.NumRows() {
			s.cur.Y = s.buf.NumRows()
		}
	}

	dir := cursor.Up
	if k == key.KeyPageDown {
		dir = cursor.Down
	}
	for i := 0; i < s.view.Rows(); i++ {
		s.cur = s.cur.Move(dir, s.buf)
	}
}
