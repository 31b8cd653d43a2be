package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/weykon/agent-hand/internal/store"
)

// extractProfileFlag pulls a global -p/--profile flag out of args before
// subcommand dispatch, also accepting the legacy AGENTDECK_PROFILE env var
// when no flag is given.
func extractProfileFlag(args []string) (string, []string) {
	var profile string
	var remaining []string

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-p=") {
			profile = strings.TrimPrefix(arg, "-p=")
			continue
		}
		if strings.HasPrefix(arg, "--profile=") {
			profile = strings.TrimPrefix(arg, "--profile=")
			continue
		}
		if arg == "-p" || arg == "--profile" {
			if i+1 < len(args) {
				profile = args[i+1]
				i++
				continue
			}
		}
		remaining = append(remaining, arg)
	}

	if profile == "" {
		profile = os.Getenv("AGENTHAND_PROFILE")
	}
	if profile == "" {
		profile = os.Getenv("AGENTDECK_PROFILE")
	}

	return profile, remaining
}

// normalizeArgs reorders args so flags come before positional arguments,
// since flag.FlagSet stops parsing at the first non-flag token.
func normalizeArgs(fs *flag.FlagSet, args []string) []string {
	boolFlags := make(map[string]bool)
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			boolFlags[f.Name] = true
		}
	})

	var flags, positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") && arg != "-" {
			flags = append(flags, arg)
			name := strings.TrimLeft(arg, "-")
			if strings.Contains(name, "=") {
				continue
			}
			if !boolFlags[name] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, arg)
		}
	}
	return append(flags, positional...)
}

// CLIOutput provides consistent human/JSON dual output across subcommands.
type CLIOutput struct {
	jsonMode bool
	quiet    bool
}

func NewCLIOutput(jsonMode, quiet bool) *CLIOutput {
	return &CLIOutput{jsonMode: jsonMode, quiet: quiet}
}

func (c *CLIOutput) Success(message string, data interface{}) {
	if c.quiet {
		return
	}
	if c.jsonMode {
		c.printJSON(data)
		return
	}
	fmt.Printf("✓ %s\n", message)
}

func (c *CLIOutput) Error(message, code string) {
	if c.jsonMode {
		c.printJSON(map[string]interface{}{"success": false, "error": message, "code": code})
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
}

func (c *CLIOutput) Print(human string, jsonData interface{}) {
	if c.quiet {
		return
	}
	if c.jsonMode {
		c.printJSON(jsonData)
		return
	}
	fmt.Print(human)
}

func (c *CLIOutput) printJSON(data interface{}) {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to format JSON: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeAmbiguous     = "AMBIGUOUS"
	ErrCodeInvalid       = "INVALID_OPERATION"
)

// ResolveSession finds a session by exact title, then ID/ID-prefix match
// (minimum 6 characters), matching the CLI surface's "id|title|id-prefix".
func ResolveSession(identifier string, instances []*store.Instance) (*store.Instance, string, string) {
	if identifier == "" {
		return nil, "session identifier is required", ErrCodeNotFound
	}

	for _, in := range instances {
		if in.Title == identifier {
			return in, "", ""
		}
	}

	var matches []*store.Instance
	if len(identifier) >= 6 {
		for _, in := range instances {
			if strings.HasPrefix(in.ID, identifier) {
				matches = append(matches, in)
			}
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Sprintf("no session matching %q", identifier), ErrCodeNotFound
	case 1:
		return matches[0], "", ""
	default:
		return nil, fmt.Sprintf("%q matches multiple sessions", identifier), ErrCodeAmbiguous
	}
}
