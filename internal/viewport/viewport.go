// Package viewport provides the visible window over the text buffer.
package viewport

// Viewport is the visible portion of the buffer: a screen-sized window
// positioned by the first visible row and the first visible render column.
// It is owned by the single-threaded editor loop.
type Viewport struct {
	rowOff int
	colOff int
	rows   int
	cols   int
}

// New creates a viewport with the given screen size.
// Width and height are clamped to a minimum of 1 to prevent underflow.
func New(cols, rows int) *Viewport {
	v := &Viewport{}
	v.Resize(cols, rows)
	return v
}

// Cols returns the viewport width in screen columns.
func (v *Viewport) Cols() int {
	return v.cols
}

// Rows returns the viewport height in screen rows.
func (v *Viewport) Rows() int {
	return v.rows
}

// RowOffset returns the buffer row shown at the top of the screen.
func (v *Viewport) RowOffset() int {
	return v.rowOff
}

// ColOffset returns the render column shown at the left edge.
func (v *Viewport) ColOffset() int {
	return v.colOff
}

// Resize sets the screen size, keeping both dimensions at least 1.
func (v *Viewport) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	v.cols = cols
	v.rows = rows
}

// Scroll adjusts the offsets so the position (cy, rx) is visible. Run once
// per frame before drawing. The policy is minimal keep-cursor-visible:
// no margins, no look-ahead.
func (v *Viewport) Scroll(cy, rx int) {
	if cy < v.rowOff {
		v.rowOff = cy
	}
	if cy >= v.rowOff+v.rows {
		v.rowOff = cy - v.rows + 1
	}
	if rx < v.colOff {
		v.colOff = rx
	}
	if rx >= v.colOff+v.cols {
		v.colOff = rx - v.cols + 1
	}
}

// Contains reports whether the position (cy, rx) is inside the window.
func (v *Viewport) Contains(cy, rx int) bool {
	return cy >= v.rowOff && cy < v.rowOff+v.rows &&
		rx >= v.colOff && rx < v.colOff+v.cols
}

// Relative converts a buffer position to screen-relative coordinates,
// both zero-based.
func (v *Viewport) Relative(cy, rx int) (row, col int) {
	return cy - v.rowOff, rx - v.colOff
}
