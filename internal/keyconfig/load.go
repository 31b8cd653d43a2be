package keyconfig

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/weykon/agent-hand/internal/apperr"
	"github.com/weykon/agent-hand/internal/logging"
)

var configLog = logging.ForComponent(logging.CompKeyConfig)

// candidatePaths returns the 4 discovery paths in precedence order.
func candidatePaths(home string) []string {
	return []string{
		filepath.Join(home, ".agent-hand", "config.json"),
		filepath.Join(home, ".agent-hand", "config.toml"),
		filepath.Join(home, ".config", "agent-hand", "config.toml"),
		filepath.Join(home, ".config", "agent-hand", "config.json"),
	}
}

// Load discovers and parses the first matching config file. Returns (nil,
// nil) when none exists — callers fall back to LoadOrDefault(nil) etc.
func Load() (*File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, apperr.New(apperr.IO, "keyconfig.Load", err)
	}

	for _, path := range candidatePaths(home) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := parseFile(path, data)
		if err != nil {
			return nil, apperr.New(apperr.Config, "keyconfig.Load", err)
		}
		return f, nil
	}
	return nil, nil
}

// resolvedPath returns the first candidate config path that exists on
// disk, or "" if none does.
func resolvedPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperr.New(apperr.IO, "keyconfig.resolvedPath", err)
	}
	for _, path := range candidatePaths(home) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parseFile(path string, data []byte) (*File, error) {
	var f File
	if filepath.Ext(path) == ".toml" {
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
		return &f, nil
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ResolvedTmuxKeys returns the three root binding specs after applying
// config overrides, resolving "off"/"none" to empty strings to signal the
// caller should skip that binding entirely.
func (f *File) ResolvedTmuxKeys(detachDefault, switcherDefault, jumpDefault string) (detach, switcher, jump string) {
	detach, switcher, jump = detachDefault, switcherDefault, jumpDefault
	if f == nil {
		return
	}
	if f.Tmux.Detach != "" {
		detach = resolveOrOff(f.Tmux, f.Tmux.Detach)
	}
	if f.Tmux.Switcher != "" {
		switcher = resolveOrOff(f.Tmux, f.Tmux.Switcher)
	}
	if f.Tmux.Jump != "" {
		jump = resolveOrOff(f.Tmux, f.Tmux.Jump)
	}
	return
}

func resolveOrOff(t TmuxOverrides, spec string) string {
	if t.disabled(spec) {
		return ""
	}
	return spec
}
