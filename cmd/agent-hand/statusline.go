package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/weykon/agent-hand/internal/engine"
	"github.com/weykon/agent-hand/internal/keyconfig"
	"github.com/weykon/agent-hand/internal/mux"
	"github.com/weykon/agent-hand/internal/priority"
	"github.com/weykon/agent-hand/internal/store"
	"github.com/weykon/agent-hand/internal/update"
)

// handleStatusline renders the single-line tmux status summary. It is
// invoked on every tmux status-bar refresh, so it guards its work with a
// non-blocking advisory lock and degrades to a minimal line rather than
// blocking the status bar on a concurrent run.
func handleStatusline(profile string, args []string) {
	fs := flag.NewFlagSet("statusline", flag.ExitOnError)
	_ = fs.Parse(normalizeArgs(fs, args))

	base, err := store.BaseDir()
	if err != nil {
		fmt.Println("AH")
		return
	}

	lock := priority.NewStatuslineLock(base)
	acquired, err := lock.TryLock()
	if err != nil || !acquired {
		fmt.Println("AH")
		return
	}
	defer lock.Unlock()

	s, instances, tree := openCatalog(profile)

	// Per the original's handle_statusline: an empty catalog prints the
	// bare "AH" indicator and nothing else.
	if len(instances) == 0 {
		fmt.Println("AH")
		return
	}

	adapter := newAdapter()
	eng := engine.New(0)

	cfg, _ := keyconfig.Load()
	rules := extraRulesFromConfig(cfg)

	if tickAll(adapter, eng, instances, rules) {
		saveCatalog(s, instances, tree)
	}

	counters := priority.Count(instances, eng.IsReady)

	current, _ := adapter.GetGlobalEnv(mux.EnvLastSession)
	target, waiting := priority.JumpTarget(instances, eng.IsReady, strings.TrimPrefix(current, mux.SessionPrefix))

	hasTarget := target != nil
	title := ""
	if hasTarget {
		title = target.Title
		_ = adapter.SetGlobalEnv(mux.EnvPrioritySession, target.MuxName())
	} else {
		_ = adapter.SetGlobalEnv(mux.EnvPrioritySession, "")
	}

	hint := update.LoadHint(base)

	fmt.Println(priority.FormatStatusLine(counters, title, waiting, hasTarget, hint))
}
