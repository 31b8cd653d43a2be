package keyconfig

// KeyBindings maps each TUI-level action to its bound key specs, in human
// form ("ctrl+g"). Multiple specs are equivalent bindings for the action.
type KeyBindings map[string][]string

// defaultKeyBindings mirrors the original tool's hardcoded defaults.
func defaultKeyBindings() KeyBindings {
	return KeyBindings{
		"quit":            {"q", "ctrl+c"},
		"up":              {"k", "up"},
		"down":            {"j", "down"},
		"select":          {"enter"},
		"collapse":        {"h", "left"},
		"expand":          {"l", "right"},
		"toggle_group":    {"space"},
		"start":           {"s"},
		"stop":            {"x"},
		"restart":         {"r"},
		"refresh":         {"ctrl+r"},
		"rename":          {"R"},
		"new_session":     {"n"},
		"delete":          {"d"},
		"fork":            {"f"},
		"create_group":    {"g"},
		"move":            {"m"},
		"tag":             {"t"},
		"preview_refresh": {"p"},
		"search":          {"/"},
		"help":            {"?"},
	}
}

// LoadOrDefault starts from the built-in defaults and applies overrides
// from a parsed config File's keybindings section, one action at a time.
func LoadOrDefault(f *File) KeyBindings {
	kb := defaultKeyBindings()
	if f == nil {
		return kb
	}
	for action, specs := range f.Keybindings {
		kb[action] = []string(specs)
	}
	return kb
}

// Matches reports whether a human-form key spec is bound to action.
func (kb KeyBindings) Matches(action, key string) bool {
	for _, spec := range kb[action] {
		if normalizeKeySpec(spec) == normalizeKeySpec(key) {
			return true
		}
	}
	return false
}
