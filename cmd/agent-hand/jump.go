package main

import (
	"strings"

	"github.com/weykon/agent-hand/internal/engine"
	"github.com/weykon/agent-hand/internal/keyconfig"
	"github.com/weykon/agent-hand/internal/mux"
	"github.com/weykon/agent-hand/internal/priority"
)

// handleJump switches the tmux client to the priority session: the one
// published by the last statusline refresh, or recomputed on the spot if
// that publication is missing or stale.
func handleJump(profile string, args []string) {
	adapter := newAdapter()
	adapter.RefreshCache()

	if name, err := adapter.GetGlobalEnv(mux.EnvPrioritySession); err == nil && name != "" {
		if exists, fresh := adapter.Exists(name); fresh && exists {
			_ = adapter.SwitchClient(name)
			return
		}
	}

	s, instances, tree := openCatalog(profile)
	eng := engine.New(0)
	cfg, _ := keyconfig.Load()
	rules := extraRulesFromConfig(cfg)
	if tickAll(adapter, eng, instances, rules) {
		saveCatalog(s, instances, tree)
	}

	current, _ := adapter.GetGlobalEnv(mux.EnvLastSession)
	target, _ := priority.JumpTarget(instances, eng.IsReady, strings.TrimPrefix(current, mux.SessionPrefix))
	if target == nil {
		return
	}
	_ = adapter.SwitchClient(target.MuxName())
}
