// Package cursor provides the logical insertion point and its movement
// rules over a row-based buffer.
package cursor

import (
	"fmt"

	"github.com/kiln-editor/kiln/internal/buffer"
)

// Direction is a single cursor movement step.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Cursor is an insertion point in the buffer. Y is the row index and X the
// byte index within that row's raw characters. Y ranges over [0, NumRows]:
// the value one past the last row is the append position for new text.
// Cursor is an immutable value type; movement returns a new cursor.
type Cursor struct {
	X, Y int
}

// Move returns the cursor after one step in direction d.
//
// Left at column 0 wraps to the end of the previous row; Right at the end
// of a row wraps to the start of the next. Up and Down change Y within
// [0, NumRows] and are no-ops at the boundaries. After any step X is
// clamped to the target row's length, so moving from a long row to a short
// one cannot leave the cursor parked past end-of-line.
func (c Cursor) Move(d Direction, buf *buffer.Buffer) Cursor {
	onRow := c.Y < buf.NumRows()

	switch d {
	case Left:
		if c.X > 0 {
			c.X--
		} else if c.Y > 0 {
			c.Y--
			c.X = buf.RowLen(c.Y)
		}
	case Right:
		if onRow && c.X < buf.RowLen(c.Y) {
			c.X++
		} else if onRow && c.X == buf.RowLen(c.Y) {
			c.Y++
			c.X = 0
		}
	case Up:
		if c.Y > 0 {
			c.Y--
		}
	case Down:
		if c.Y < buf.NumRows() {
			c.Y++
		}
	}

	return c.ClampX(buf)
}

// ClampX returns the cursor with X limited to the current row's length.
func (c Cursor) ClampX(buf *buffer.Buffer) Cursor {
	if n := buf.RowLen(c.Y); c.X > n {
		c.X = n
	}
	if c.X < 0 {
		c.X = 0
	}
	return c
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d, %d)", c.X, c.Y)
}
