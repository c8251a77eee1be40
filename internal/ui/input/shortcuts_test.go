package input

import (
	"testing"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		keyval uint
		state  gdk.ModifierType
		want   Action
	}{
		{"ctrl+t", uint(gdk.KEY_t), gdk.ControlMask, ActionNewTab},
		{"ctrl+T matches lowercase", uint(gdk.KEY_T), gdk.ControlMask, ActionNewTab},
		{"ctrl+w", uint(gdk.KEY_w), gdk.ControlMask, ActionCloseTab},
		{"alt+left", uint(gdk.KEY_Left), gdk.AltMask, ActionBack},
		{"alt+right", uint(gdk.KEY_Right), gdk.AltMask, ActionForward},
		{"f5", uint(gdk.KEY_F5), 0, ActionReload},
		{"caps lock ignored", uint(gdk.KEY_r), gdk.ControlMask | gdk.LockMask, ActionReload},
		{"plain t", uint(gdk.KEY_t), 0, ActionNone},
		{"ctrl+alt+t", uint(gdk.KEY_t), gdk.ControlMask | gdk.AltMask, ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lookup(tt.keyval, tt.state); got != tt.want {
				t.Errorf("Lookup() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTabIndexForKeycode(t *testing.T) {
	tests := []struct {
		keycode uint
		mods    Modifier
		want    int
		wantOk  bool
	}{
		{KeycodeDigit1, ModAlt, 0, true},
		{15, ModAlt, 5, true},
		{KeycodeDigit0, ModAlt, 9, true},
		{KeycodeDigit1, ModCtrl, -1, false},
		{KeycodeDigit1, ModAlt | ModShift, -1, false},
		{20, ModAlt, -1, false},
	}
	for _, tt := range tests {
		got, ok := TabIndexForKeycode(tt.keycode, tt.mods)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("TabIndexForKeycode(%d, %d) = %d, %v; want %d, %v", tt.keycode, tt.mods, got, ok, tt.want, tt.wantOk)
		}
	}
}
