package main

import (
	"flag"

	"github.com/weykon/agent-hand/internal/store"
)

func handleRemove(profile string, args []string) {
	fs := flag.NewFlagSet("remove", flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(normalizeArgs(fs, args))

	out := NewCLIOutput(*jsonOutput, false)

	if fs.NArg() == 0 {
		out.Error("usage: agent-hand remove <id|title|id-prefix>", ErrCodeInvalid)
		return
	}

	s, instances, tree := openCatalog(profile)

	in, msg, code := ResolveSession(fs.Arg(0), instances)
	if in == nil {
		out.Error(msg, code)
		return
	}

	adapter := newAdapter()
	_ = adapter.Kill(in.MuxName())

	remaining := make([]*store.Instance, 0, len(instances)-1)
	for _, cand := range instances {
		if cand.ID != in.ID {
			remaining = append(remaining, cand)
		}
	}

	saveCatalog(s, remaining, tree)
	out.Success("removed "+in.Title, in)
}
