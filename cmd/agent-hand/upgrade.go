package main

import (
	"flag"
	"fmt"

	"github.com/weykon/agent-hand/internal/store"
	"github.com/weykon/agent-hand/internal/update"
)

// handleUpgrade reports on the cached update check; it never fetches a
// release or replaces the running binary, so the flags below are parsed
// for CLI-surface compatibility and otherwise ignored.
func handleUpgrade(args []string) {
	fs := flag.NewFlagSet("upgrade", flag.ExitOnError)
	_ = fs.String("prefix", "", "install prefix (unused)")
	_ = fs.String("version", "", "target version (unused)")
	jsonOutput := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(normalizeArgs(fs, args))

	out := NewCLIOutput(*jsonOutput, false)

	base, err := store.BaseDir()
	if err != nil {
		fatalf("resolving base directory: %v", err)
	}

	hint := update.LoadHint(base)
	if hint == "" {
		out.Success("no fresh cached update check reports a newer version", nil)
		return
	}

	if *jsonOutput {
		out.Print("", map[string]string{"hint": hint})
		return
	}
	fmt.Printf("update available: %s\n", hint)
	fmt.Println("self-upgrade is not performed by this build; update via your package manager")
}
