package keyconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeySpecModifiers(t *testing.T) {
	spec := ParseKeySpec("ctrl+alt+g")
	assert.True(t, spec.Ctrl)
	assert.True(t, spec.Alt)
	assert.False(t, spec.Shift)
	assert.Equal(t, "g", spec.Code)
}

func TestParseKeySpecNamedKey(t *testing.T) {
	spec := ParseKeySpec("ctrl+enter")
	assert.True(t, spec.Ctrl)
	assert.Equal(t, "Enter", spec.Code)
}

func TestParseKeySpecSingleChar(t *testing.T) {
	spec := ParseKeySpec("q")
	assert.False(t, spec.Ctrl)
	assert.Equal(t, "q", spec.Code)
}

func TestLoadOrDefaultAppliesOverride(t *testing.T) {
	f := &File{Keybindings: map[string]OneOrMany{"quit": {"ctrl+q"}}}
	kb := LoadOrDefault(f)
	assert.Equal(t, []string{"ctrl+q"}, kb["quit"])
	assert.NotEmpty(t, kb["up"]) // untouched default survives
}

func TestLoadOrDefaultNilConfigReturnsDefaults(t *testing.T) {
	kb := LoadOrDefault(nil)
	assert.Contains(t, kb, "quit")
	assert.Contains(t, kb, "toggle_group")
}

func TestOneOrManyUnmarshalSingleString(t *testing.T) {
	var o OneOrMany
	require.NoError(t, json.Unmarshal([]byte(`"ctrl+g"`), &o))
	assert.Equal(t, OneOrMany{"ctrl+g"}, o)
}

func TestOneOrManyUnmarshalArray(t *testing.T) {
	var o OneOrMany
	require.NoError(t, json.Unmarshal([]byte(`["ctrl+g", "g"]`), &o))
	assert.Equal(t, OneOrMany{"ctrl+g", "g"}, o)
}

func TestResolvedTmuxKeysOffDisables(t *testing.T) {
	f := &File{Tmux: TmuxOverrides{Jump: "off"}}
	detach, switcher, jump := f.ResolvedTmuxKeys("ctrl+q", "ctrl+g", "ctrl+n")
	assert.Equal(t, "ctrl+q", detach)
	assert.Equal(t, "ctrl+g", switcher)
	assert.Equal(t, "", jump)
}

func TestResolvedTmuxKeysOverride(t *testing.T) {
	f := &File{Tmux: TmuxOverrides{Detach: "ctrl+d"}}
	detach, _, _ := f.ResolvedTmuxKeys("ctrl+q", "ctrl+g", "ctrl+n")
	assert.Equal(t, "ctrl+d", detach)
}

func TestKeyBindingsMatchesNormalizesSpecs(t *testing.T) {
	kb := KeyBindings{"quit": {"Ctrl+Q"}}
	assert.True(t, kb.Matches("quit", "ctrl+q"))
}
