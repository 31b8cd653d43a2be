package main

import (
	"flag"
	"time"
)

func handleSession(profile string, args []string) {
	if len(args) == 0 {
		fatalf("usage: agent-hand session {start|stop|restart|attach|show} <id>")
	}

	sub := args[0]
	rest := args[1:]

	fs := flag.NewFlagSet("session "+sub, flag.ExitOnError)
	jsonOutput := fs.Bool("json", false, "JSON output")
	_ = fs.Parse(normalizeArgs(fs, rest))
	out := NewCLIOutput(*jsonOutput, false)

	if fs.NArg() == 0 {
		out.Error("a session identifier is required", ErrCodeInvalid)
		return
	}

	s, instances, tree := openCatalog(profile)
	in, msg, code := ResolveSession(fs.Arg(0), instances)
	if in == nil {
		out.Error(msg, code)
		return
	}

	adapter := newAdapter()

	switch sub {
	case "start":
		if err := adapter.Create(in.MuxName(), in.ProjectPath, in.Command); err != nil {
			fatalf("starting session: %v", err)
		}
		out.Success("started "+in.Title, in)

	case "stop":
		if err := adapter.Kill(in.MuxName()); err != nil {
			fatalf("stopping session: %v", err)
		}
		out.Success("stopped "+in.Title, in)

	case "restart":
		_ = adapter.Kill(in.MuxName())
		if err := adapter.Create(in.MuxName(), in.ProjectPath, in.Command); err != nil {
			fatalf("restarting session: %v", err)
		}
		out.Success("restarted "+in.Title, in)

	case "attach":
		now := time.Now().UTC()
		in.LastAccessedAt = &now
		saveCatalog(s, instances, tree)
		if err := adapter.AttachInteractive(in.MuxName()); err != nil {
			fatalf("attaching to session: %v", err)
		}
		return

	case "show":
		out.Print("", in)
		return

	default:
		fatalf("unknown session subcommand: %s", sub)
	}

	saveCatalog(s, instances, tree)
}
