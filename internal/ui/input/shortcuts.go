// Package input maps key presses to shell actions.
package input

import "github.com/diamondburned/gotk4/pkg/gdk/v4"

// Action is a keyboard-triggered shell action.
type Action string

const (
	ActionNone        Action = ""
	ActionNewTab      Action = "new_tab"
	ActionCloseTab    Action = "close_tab"
	ActionNextTab     Action = "next_tab"
	ActionPrevTab     Action = "previous_tab"
	ActionBack        Action = "back"
	ActionForward     Action = "forward"
	ActionReload      Action = "reload"
	ActionHome        Action = "home"
	ActionFocusSearch Action = "focus_search"
	ActionHistory     Action = "history"
	ActionVoice       Action = "voice"
)

// Modifier is a subset of GDK modifier flags.
type Modifier uint

const (
	ModNone  Modifier = 0
	ModShift Modifier = Modifier(gdk.ShiftMask)
	ModCtrl  Modifier = Modifier(gdk.ControlMask)
	ModAlt   Modifier = Modifier(gdk.AltMask)
)

// modifierMask drops lock keys and pointer buttons from GDK state.
const modifierMask = ModCtrl | ModShift | ModAlt

// KeyBinding is a keyval plus the modifiers that must be held.
type KeyBinding struct {
	Keyval    uint
	Modifiers Modifier
}

// GDK reports Shift+Tab as ISO_Left_Tab.
const shiftTab = uint(gdk.KEY_ISO_Left_Tab)

// DefaultShortcuts is the built-in key map.
var DefaultShortcuts = map[KeyBinding]Action{
	{uint(gdk.KEY_t), ModCtrl}:            ActionNewTab,
	{uint(gdk.KEY_w), ModCtrl}:            ActionCloseTab,
	{uint(gdk.KEY_Tab), ModCtrl}:          ActionNextTab,
	{shiftTab, ModCtrl | ModShift}:        ActionPrevTab,
	{uint(gdk.KEY_Left), ModAlt}:          ActionBack,
	{uint(gdk.KEY_Right), ModAlt}:         ActionForward,
	{uint(gdk.KEY_r), ModCtrl}:            ActionReload,
	{uint(gdk.KEY_F5), ModNone}:           ActionReload,
	{uint(gdk.KEY_Home), ModAlt}:          ActionHome,
	{uint(gdk.KEY_l), ModCtrl}:            ActionFocusSearch,
	{uint(gdk.KEY_h), ModCtrl}:            ActionHistory,
	{uint(gdk.KEY_m), ModCtrl | ModShift}: ActionVoice,
}

// Lookup returns the action bound to keyval with state held.
// Uppercase letters match their lowercase binding.
func Lookup(keyval uint, state gdk.ModifierType) Action {
	mods := Modifier(state) & modifierMask
	keyval = uint(gdk.KeyvalToLower(keyval))

	if action, ok := DefaultShortcuts[KeyBinding{Keyval: keyval, Modifiers: mods}]; ok {
		return action
	}
	return ActionNone
}
