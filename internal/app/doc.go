// Package app ties the editor together: the session state, the
// single-threaded frame loop, edit and file operations, the status
// message slot and the quit confirmation countdown.
//
// A Session owns one buffer, one cursor, one viewport and one terminal.
// Its loop runs refresh, poll, handle: compose and flush a frame, wait up
// to the read timeout for a key, apply the key to the session state. The
// poll timeout is the loop's only suspension point; pending window-size
// changes are drained synchronously at the top of each iteration, so no
// goroutine ever mutates session state.
package app
