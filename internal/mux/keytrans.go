package mux

import "strings"

// namedKeys pass through unchanged in either notation.
var namedKeys = map[string]bool{
	"Enter": true, "Escape": true, "Tab": true, "Space": true,
	"Up": true, "Down": true, "Left": true, "Right": true,
}

// TranslateKey accepts either native tmux notation ("C-g", "M-x") or a
// human form ("Ctrl+g", "Alt+g") and returns tmux's bind-key notation.
// Named keys pass through untouched.
func TranslateKey(spec string) string {
	if namedKeys[spec] {
		return spec
	}
	if strings.HasPrefix(spec, "C-") || strings.HasPrefix(spec, "M-") || strings.HasPrefix(spec, "S-") {
		return spec
	}

	lower := strings.ToLower(spec)
	switch {
	case strings.HasPrefix(lower, "ctrl+"):
		return "C-" + spec[len("ctrl+"):]
	case strings.HasPrefix(lower, "alt+"):
		return "M-" + spec[len("alt+"):]
	case strings.HasPrefix(lower, "shift+"):
		return "S-" + spec[len("shift+"):]
	default:
		return spec
	}
}

// EscapeSemicolon escapes the literal ";" so it survives tmux's command
// separator, as required when composing multi-command key bindings.
func EscapeSemicolon(s string) string {
	return strings.ReplaceAll(s, ";", `\;`)
}
