package main

import (
	"fmt"
	"os"

	"github.com/weykon/agent-hand/internal/group"
	"github.com/weykon/agent-hand/internal/keyconfig"
	"github.com/weykon/agent-hand/internal/mux"
	"github.com/weykon/agent-hand/internal/store"
)

// openCatalog opens the profile's Store and loads its current catalog.
// Every subcommand that touches sessions goes through this single path so
// Store's atomic-save/backup discipline is never bypassed.
func openCatalog(profile string) (*store.Store, []*store.Instance, *group.Tree) {
	s, err := store.New(profile)
	if err != nil {
		fatalf("opening profile %q: %v", profile, err)
	}
	instances, tree, err := s.Load()
	if err != nil {
		fatalf("loading catalog: %v", err)
	}
	return s, instances, tree
}

func saveCatalog(s *store.Store, instances []*store.Instance, tree *group.Tree) {
	if err := s.Save(instances, tree); err != nil {
		fatalf("saving catalog: %v", err)
	}
}

// newAdapter builds the mux.Adapter every command talks through, and
// makes sure the tmux server's detach/switcher/jump key bindings and
// status-left are installed. EnsureServerBindings skips rebinding a key
// once it is memoized in the server's global env; it still reads those
// env vars and re-sets status-left on every call.
func newAdapter() *mux.Adapter {
	adapter := mux.New()
	if !adapter.IsAvailable() {
		return adapter
	}

	cfg, _ := keyconfig.Load()
	detach, switcher, jump := cfg.ResolvedTmuxKeys(mux.DefaultDetachKey, mux.DefaultSwitcherKey, mux.DefaultJumpKey)
	selfBinary, err := os.Executable()
	if err != nil {
		selfBinary = "agent-hand"
	}
	adapter.EnsureServerBindings(mux.BindingSpec{
		DetachKey:   detach,
		SwitcherKey: switcher,
		JumpKey:     jump,
		SelfBinary:  selfBinary,
	})
	return adapter
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
