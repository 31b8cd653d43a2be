package keyconfig

import "strings"

// KeySpec is a parsed human key form: a base key code plus modifier flags.
type KeySpec struct {
	Code  string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// namedKeyCodes maps a lower-cased named key to its canonical Code.
var namedKeyCodes = map[string]string{
	"enter":     "Enter",
	"esc":       "Escape",
	"escape":    "Escape",
	"tab":       "Tab",
	"space":     "Space",
	"backspace": "Backspace",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pagedown":  "PageDown",
	"delete":    "Delete",
	"insert":    "Insert",
}

// ParseKeySpec splits a human form ("ctrl+alt+g") on "+", peeling off
// modifier prefixes, and resolves the remaining token against the named-key
// table, falling back to a single-character code.
func ParseKeySpec(s string) KeySpec {
	var spec KeySpec
	parts := strings.Split(s, "+")
	for i, part := range parts {
		lower := strings.ToLower(strings.TrimSpace(part))
		last := i == len(parts)-1
		switch lower {
		case "ctrl":
			spec.Ctrl = true
		case "alt":
			spec.Alt = true
		case "shift":
			spec.Shift = true
		default:
			if last {
				if code, ok := namedKeyCodes[lower]; ok {
					spec.Code = code
				} else {
					spec.Code = part
				}
			}
		}
	}
	return spec
}

// normalizeKeySpec canonicalizes a human key form for equality comparison.
func normalizeKeySpec(s string) string {
	spec := ParseKeySpec(s)
	out := spec.Code
	if spec.Shift {
		out = "shift+" + out
	}
	if spec.Alt {
		out = "alt+" + out
	}
	if spec.Ctrl {
		out = "ctrl+" + out
	}
	return strings.ToLower(out)
}
