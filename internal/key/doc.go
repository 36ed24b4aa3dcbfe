// Package key defines the decoded keyboard event model.
//
// The terminal delivers raw bytes; the terminal package decodes them into
// key.Event values, which are the only currency the editor loop speaks:
//
//   - Key: identifies a key (arrows, paging, editing keys, or KeyRune)
//   - Event: a single key press, carrying the rune for character keys and
//     a Ctrl flag for control-letter combinations
//
// Control bytes 0x01..0x1a surface as Event{Key: KeyRune, Rune: letter,
// Ctrl: true}, so Ctrl-S arrives as Ctrl('s'), not as the raw byte 0x13.
package key
