// Package profile implements profile auto-detection: environment variable,
// Claude config directory inference, then a plain default.
package profile

import (
	"os"
	"path/filepath"
	"strings"
)

const EnvProfile = "AGENTHAND_PROFILE"

// Detect picks the active profile. Priority:
//  1. AGENTHAND_PROFILE environment variable (explicit)
//  2. CLAUDE_CONFIG_DIR environment variable (inferred, e.g. ~/.claude-work -> "work")
//  3. "default"
func Detect() string {
	if p := os.Getenv(EnvProfile); p != "" {
		return p
	}

	if configDir := os.Getenv("CLAUDE_CONFIG_DIR"); configDir != "" {
		if p := fromConfigDir(configDir); p != "" {
			return p
		}
	}

	return "default"
}

func fromConfigDir(configDir string) string {
	baseName := filepath.Base(configDir)

	if strings.HasPrefix(baseName, ".claude-") {
		if suffix := strings.TrimPrefix(baseName, ".claude-"); suffix != "" {
			return suffix
		}
	}

	if strings.Contains(baseName, "-") {
		parts := strings.Split(baseName, "-")
		if len(parts) > 1 {
			return parts[len(parts)-1]
		}
	}

	return ""
}
