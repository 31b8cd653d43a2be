package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/weykon/agent-hand/internal/apperr"
	"github.com/weykon/agent-hand/internal/store"
)

func handleAdd(profile string, args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	title := fs.String("t", "", "session title")
	group_ := fs.String("g", "", "group path")
	cmd := fs.String("c", "", "command to run in the new session")
	jsonOutput := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(normalizeArgs(fs, args))

	path := "."
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		fatalf("resolving path: %v", err)
	}

	out := NewCLIOutput(*jsonOutput, false)

	info, err := os.Stat(absPath)
	if err != nil || !info.IsDir() {
		out.Error("project_path must resolve to an existing directory", ErrCodeInvalid)
		os.Exit(1)
	}

	s, instances, tree := openCatalog(profile)

	for _, in := range instances {
		if in.ProjectPath == absPath {
			out.Success("session already exists for this path", in)
			return
		}
	}

	sessionTitle := *title
	if sessionTitle == "" {
		sessionTitle = filepath.Base(absPath)
	}

	in := &store.Instance{
		ID:          store.NewID(),
		Title:       sessionTitle,
		ProjectPath: absPath,
		GroupPath:   *group_,
		Command:     *cmd,
		Status:      store.StatusStarting,
		CreatedAt:   time.Now().UTC(),
	}

	adapter := newAdapter()
	if err := adapter.Create(in.MuxName(), absPath, *cmd); err != nil {
		fatalf("creating multiplexer session: %v", apperr.New(apperr.Mux, "add", err))
	}

	instances = append(instances, in)
	if in.GroupPath != "" {
		tree.Create(in.GroupPath)
	}
	saveCatalog(s, instances, tree)

	out.Success("added "+in.Title, in)
}
