package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyEnter, "Enter"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyDelete, "Delete"},
		{KeyHome, "Home"},
		{KeyEnd, "End"},
		{KeyPageUp, "PageUp"},
		{KeyPageDown, "PageDown"},
		{KeyUp, "Up"},
		{KeyDown, "Down"},
		{KeyLeft, "Left"},
		{KeyRight, "Right"},
		{KeyRune, "Rune"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyIsSpecial(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyNone, false},
		{KeyRune, false},
		{KeyEscape, true},
		{KeyEnter, true},
		{KeyDelete, true},
		{KeyUp, true},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsSpecial(); got != tt.want {
				t.Errorf("Key.IsSpecial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyIsNavigation(t *testing.T) {
	tests := []struct {
		key  Key
		want bool
	}{
		{KeyUp, true},
		{KeyDown, true},
		{KeyLeft, true},
		{KeyRight, true},
		{KeyHome, true},
		{KeyEnd, true},
		{KeyPageUp, true},
		{KeyPageDown, true},
		{KeyEnter, false},
		{KeyBackspace, false},
		{KeyRune, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsNavigation(); got != tt.want {
				t.Errorf("Key.IsNavigation() = %v, want %v", got, tt.want)
			}
		})
	}
}
