// Package buffer provides the row-based text buffer at the core of the
// editor engine.
//
// A Buffer is an ordered sequence of rows, each holding the raw bytes of one
// line (chars) plus a derived display form (render) in which tabs are
// expanded to spaces. The render form is recomputed from chars on every
// mutation and is never read stale.
//
// The buffer package provides:
//
//   - Row insertion, deletion and splitting at arbitrary indices
//   - Character insertion and deletion within a row
//   - Row concatenation for line merges
//   - Flattening back to file contents
//   - Line-oriented loading from an io.Reader
//   - Conversion from character columns to render columns (tab expansion)
//   - A dirty counter tracking unsaved mutations
//
// Basic usage:
//
//	buf := buffer.New(8)
//	buf.InsertRow(0, "hello")
//	buf.InsertChar(0, 5, '!')  // "hello!"
//	text := buf.Contents()     // "hello!\n"
//
// The buffer is owned by a single-threaded editor loop and performs no
// locking; it is not safe for concurrent use.
package buffer
