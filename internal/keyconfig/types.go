// Package keyconfig implements configuration discovery and parsing (C7):
// keybinding overrides, tmux root-binding overrides, analytics/input-logging
// toggles, and Detector rule extensions.
package keyconfig

import (
	"encoding/json"
	"fmt"
)

// OneOrMany accepts either a single string or an array of strings for the
// same JSON/TOML key, mirroring the original config format's keybinding
// values ("ctrl+g" or ["ctrl+g", "g"]).
type OneOrMany []string

func (o *OneOrMany) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*o = OneOrMany{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("keybinding value must be a string or array of strings: %w", err)
	}
	*o = OneOrMany(many)
	return nil
}

// UnmarshalTOML implements BurntSushi/toml's Unmarshaler for the same
// one-or-many shape.
func (o *OneOrMany) UnmarshalTOML(data interface{}) error {
	switch v := data.(type) {
	case string:
		*o = OneOrMany{v}
		return nil
	case []interface{}:
		out := make(OneOrMany, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return fmt.Errorf("keybinding array entries must be strings")
			}
			out = append(out, s)
		}
		*o = out
		return nil
	default:
		return fmt.Errorf("keybinding value must be a string or array of strings")
	}
}

// TmuxOverrides overrides the three root-level multiplexer bindings. A
// value of "off" or "none" disables that binding entirely.
type TmuxOverrides struct {
	Switcher string `json:"switcher,omitempty" toml:"switcher,omitempty"`
	Detach   string `json:"detach,omitempty" toml:"detach,omitempty"`
	Jump     string `json:"jump,omitempty" toml:"jump,omitempty"`
}

func (t TmuxOverrides) disabled(spec string) bool {
	return spec == "off" || spec == "none"
}

// AnalyticsConfig opts into the enter/exit/switch event log.
type AnalyticsConfig struct {
	Enabled bool `json:"enabled" toml:"enabled"`
}

// InputLoggingConfig is a compile-time gated external feature; this tool
// only carries its config shape through, it does not implement capture.
type InputLoggingConfig struct {
	Enabled             bool `json:"enabled" toml:"enabled"`
	CompressThresholdMB int  `json:"compress_threshold_mb,omitempty" toml:"compress_threshold_mb,omitempty"`
	MaxArchives         int  `json:"max_archives,omitempty" toml:"max_archives,omitempty"`
}

// StatusDetectionConfig carries Detector rule extensions through to
// internal/detector.ExtraRules.
type StatusDetectionConfig struct {
	PromptContains []string `json:"prompt_contains,omitempty" toml:"prompt_contains,omitempty"`
	PromptRegex    []string `json:"prompt_regex,omitempty" toml:"prompt_regex,omitempty"`
	BusyContains   []string `json:"busy_contains,omitempty" toml:"busy_contains,omitempty"`
	BusyRegex      []string `json:"busy_regex,omitempty" toml:"busy_regex,omitempty"`
}

// File is the parsed shape of a config.json or config.toml document.
type File struct {
	Keybindings      map[string]OneOrMany  `json:"keybindings,omitempty" toml:"keybindings,omitempty"`
	Tmux             TmuxOverrides         `json:"tmux,omitempty" toml:"tmux,omitempty"`
	Analytics        AnalyticsConfig       `json:"analytics,omitempty" toml:"analytics,omitempty"`
	InputLogging     InputLoggingConfig    `json:"input_logging,omitempty" toml:"input_logging,omitempty"`
	StatusDetection  StatusDetectionConfig `json:"status_detection,omitempty" toml:"status_detection,omitempty"`
}
