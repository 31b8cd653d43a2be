package main

import (
	"flag"
	"fmt"

	"github.com/weykon/agent-hand/internal/store"
)

func handleProfile(args []string) {
	if len(args) == 0 {
		fatalf("usage: agent-hand profile {list|create|delete} [name]")
	}

	sub := args[0]
	rest := args[1:]

	fs := flag.NewFlagSet("profile "+sub, flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(normalizeArgs(fs, rest))
	out := NewCLIOutput(*jsonOutput, false)

	switch sub {
	case "list":
		profiles, err := store.ListProfiles()
		if err != nil {
			fatalf("listing profiles: %v", err)
		}
		if *jsonOutput {
			out.Print("", profiles)
			return
		}
		for _, p := range profiles {
			fmt.Println(p)
		}

	case "create":
		if fs.NArg() == 0 {
			out.Error("a profile name is required", ErrCodeInvalid)
			return
		}
		if err := store.CreateProfile(fs.Arg(0)); err != nil {
			fatalf("creating profile: %v", err)
		}
		out.Success("created profile "+fs.Arg(0), nil)

	case "delete":
		if fs.NArg() == 0 {
			out.Error("a profile name is required", ErrCodeInvalid)
			return
		}
		if err := store.DeleteProfile(fs.Arg(0)); err != nil {
			fatalf("deleting profile: %v", err)
		}
		out.Success("deleted profile "+fs.Arg(0), nil)

	default:
		fatalf("unknown profile subcommand: %s", sub)
	}
}
