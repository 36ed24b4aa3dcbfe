// Package terminal owns the controlling terminal.
//
// It covers three concerns:
//
//   - Raw-mode lifecycle: snapshot the terminal attributes, switch to raw
//     input with a bounded (~100ms) read timeout, and restore the snapshot
//     on every exit path.
//   - Key decoding: a small state machine turning the raw byte stream,
//     including multi-byte escape sequences, into key.Event values. Torn
//     or unrecognized sequences decode as a plain Escape, never an error.
//   - Size queries: the window dimensions via ioctl, with a fallback that
//     drives the cursor to the bottom-right corner and reads back the
//     reported position.
//
// Reads use VMIN=0/VTIME=1 termios semantics, so a poll that finds no
// pending input returns normally with no event. The editor loop treats
// that as its idle tick.
package terminal
