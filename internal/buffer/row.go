package buffer

// Row is a single line of text. chars holds the raw bytes with no line
// terminator; render holds the display form with tabs expanded.
type Row struct {
	chars  []byte
	render []byte
}

// newRow builds a row from text and computes its render form.
func newRow(text string, tabStop int) *Row {
	r := &Row{chars: []byte(text)}
	r.update(tabStop)
	return r
}

// update recomputes render from chars. Every multiple of tabStop is a tab
// stop; a tab advances to the next one, emitting at least one space.
func (r *Row) update(tabStop int) {
	n := 0
	for _, c := range r.chars {
		if c == '\t' {
			n += tabStop
		} else {
			n++
		}
	}

	render := make([]byte, 0, n)
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
}

// Len returns the number of raw bytes in the row.
func (r *Row) Len() int {
	return len(r.chars)
}

// RenderLen returns the number of display columns in the rendered row.
func (r *Row) RenderLen() int {
	return len(r.render)
}

// Text returns the raw row contents as a string.
func (r *Row) Text() string {
	return string(r.chars)
}

// Chars returns the raw row bytes. The slice is owned by the row and must
// not be modified by the caller.
func (r *Row) Chars() []byte {
	return r.chars
}

// Render returns the display bytes with tabs expanded. The slice is owned
// by the row and must not be modified by the caller.
func (r *Row) Render() []byte {
	return r.render
}
