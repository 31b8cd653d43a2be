package main

import (
	"flag"
	"fmt"

	"github.com/weykon/agent-hand/internal/detector"
	"github.com/weykon/agent-hand/internal/engine"
	"github.com/weykon/agent-hand/internal/keyconfig"
	"github.com/weykon/agent-hand/internal/priority"
	"github.com/weykon/agent-hand/internal/store"
)

// tickAll refreshes the adapter's activity cache and advances every
// session's engine state once. It mutates instances in place and reports
// whether anything persist-worthy changed (Status, LastRunningAt, or
// LastWaitingAt), so callers can gate a saveCatalog on it rather than
// writing the catalog back out on every one-shot invocation.
func tickAll(adapter muxLike, eng *engine.Engine, instances []*store.Instance, rules *detector.ExtraRules) bool {
	adapter.RefreshCache()
	dirty := false
	for _, in := range instances {
		prevStatus := in.Status
		prevRunningAt := in.LastRunningAt
		prevWaitingAt := in.LastWaitingAt

		activity, ok := adapter.Activity(in.MuxName())
		if !ok {
			eng.Tick(in, 0, true, nil)
		} else {
			eng.Tick(in, activity, false, func() detector.Classification {
				screen := adapter.Capture(in.MuxName(), 60)
				return detector.Classify(screen, rules)
			})
		}

		if in.Status != prevStatus || in.LastRunningAt != prevRunningAt || in.LastWaitingAt != prevWaitingAt {
			dirty = true
		}
	}
	return dirty
}

func handleStatus(profile string, args []string) {
	fs := flag.NewFlagSet("status", flag.ExitOnError)
	verbose := fs.Bool("v", false, "verbose per-session listing")
	quiet := fs.Bool("q", false, "suppress human output")
	jsonOutput := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(normalizeArgs(fs, args))

	out := NewCLIOutput(*jsonOutput, *quiet)

	s, instances, tree := openCatalog(profile)
	adapter := newAdapter()
	eng := engine.New(0)

	cfg, _ := keyconfig.Load()
	rules := extraRulesFromConfig(cfg)

	if tickAll(adapter, eng, instances, rules) {
		saveCatalog(s, instances, tree)
	}

	counters := priority.Count(instances, eng.IsReady)

	if *jsonOutput {
		out.Print("", map[string]interface{}{"counters": counters, "instances": instances})
		return
	}
	if *quiet {
		return
	}

	fmt.Printf("waiting=%d ready=%d running=%d idle=%d error=%d\n",
		counters.Waiting, counters.Ready, counters.Running, counters.Idle, counters.Error)

	if *verbose {
		printInstances(instances)
	}
}

// muxLike is the subset of *mux.Adapter the status/statusline paths need,
// narrowed so tickAll stays testable without a live tmux socket.
type muxLike interface {
	RefreshCache()
	Activity(name string) (int64, bool)
	Capture(name string, lines int) string
}

func extraRulesFromConfig(cfg *keyconfig.File) *detector.ExtraRules {
	if cfg == nil {
		return &detector.ExtraRules{}
	}
	return &detector.ExtraRules{
		BusyContains:   cfg.StatusDetection.BusyContains,
		BusyRegex:      cfg.StatusDetection.BusyRegex,
		PromptContains: cfg.StatusDetection.PromptContains,
		PromptRegex:    cfg.StatusDetection.PromptRegex,
	}
}
