package main

import (
	"fmt"
	"os"

	"github.com/weykon/agent-hand/internal/logging"
	appprofile "github.com/weykon/agent-hand/internal/profile"
	"github.com/weykon/agent-hand/internal/store"
)

const Version = "0.1.0"

func main() {
	profile, args := extractProfileFlag(os.Args[1:])
	if profile == "" {
		profile = appprofile.Detect()
	}
	if profile != "" {
		_ = os.Setenv("AGENTHAND_PROFILE", profile)
	}

	if os.Getenv("AGENTHAND_DEBUG") != "" {
		if base, err := store.BaseDir(); err == nil {
			logging.Init(logging.Config{Debug: true, LogDir: base})
			defer logging.Shutdown()
		}
	}

	if len(args) == 0 {
		printHelp()
		os.Exit(1)
	}

	switch args[0] {
	case "version", "--version", "-v":
		fmt.Printf("agent-hand v%s\n", Version)
	case "help", "--help", "-h":
		printHelp()
	case "add":
		handleAdd(profile, args[1:])
	case "list", "ls":
		handleList(profile, args[1:])
	case "remove", "rm":
		handleRemove(profile, args[1:])
	case "status":
		handleStatus(profile, args[1:])
	case "statusline":
		handleStatusline(profile, args[1:])
	case "session":
		handleSession(profile, args[1:])
	case "profile":
		handleProfile(args[1:])
	case "switch":
		handleSwitch(profile, args[1:])
	case "jump":
		handleJump(profile, args[1:])
	case "upgrade":
		handleUpgrade(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Print(`agent-hand - terminal session manager for AI coding agents

Usage:
  agent-hand [--profile NAME] <command> [args]

Commands:
  add [path] [-t title] [-g group] [-c cmd]   add a session
  list [--json] [--all]                       list sessions
  remove <id|title|id-prefix>                 remove a session
  status [-v|-q|--json]                       counts by classified state
  statusline                                  single-line status summary
  session {start|stop|restart|attach|show}    session lifecycle
  profile {list|create|delete}                profile management
  switch                                      interactive session picker
  jump                                        switch to the priority session
  version                                     print the version
  upgrade [--prefix DIR] [--version TAG]      show the cached update hint
`)
}
