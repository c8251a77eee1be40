package input

// Hardware keycodes of the number row (evdev + 8). Matching on keycode keeps
// Alt+digit working on layouts where the row does not produce digits.
const (
	KeycodeDigit1 uint = 10
	KeycodeDigit0 uint = 19
)

// TabIndexForKeycode maps Alt+1..Alt+0 to tab indexes 0..9.
func TabIndexForKeycode(keycode uint, state Modifier) (int, bool) {
	if state&modifierMask != ModAlt {
		return -1, false
	}
	if keycode >= KeycodeDigit1 && keycode <= KeycodeDigit0 {
		return int(keycode - KeycodeDigit1), true
	}
	return -1, false
}
