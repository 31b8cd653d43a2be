// Package mux implements the multiplexer adapter (C3): a thin wrapper
// around tmux, run on a dedicated private socket so its sessions never
// collide with the user's own interactive tmux.
package mux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/weykon/agent-hand/internal/logging"
	"golang.org/x/sync/singleflight"
)

var muxLog = logging.ForComponent(logging.CompMux)

// SocketName is the fixed private socket this tool always targets.
const SocketName = "agentdeck_rs"

// SessionPrefix discriminates our sessions from anything else on the socket.
const SessionPrefix = "agentdeck_rs_"

// SessionName encodes a session id into its multiplexer session name.
func SessionName(id string) string {
	return SessionPrefix + id
}

// ErrCaptureTimeout marks a capture-pane that exceeded its 3 s timeout
// inside Capture, which reports that case to its caller as "".
var ErrCaptureTimeout = errors.New("capture-pane timed out")

// Adapter is a handle onto the private tmux socket.
type Adapter struct {
	captureSf singleflight.Group
	cache     cache
}

// New returns an Adapter targeting the private socket.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) cmd(args ...string) *exec.Cmd {
	full := append([]string{"-L", SocketName}, args...)
	return exec.Command("tmux", full...)
}

func (a *Adapter) cmdContext(ctx context.Context, args ...string) *exec.Cmd {
	full := append([]string{"-L", SocketName}, args...)
	return exec.CommandContext(ctx, "tmux", full...)
}

// IsAvailable reports whether the tmux binary is reachable. Never errors.
func (a *Adapter) IsAvailable() bool {
	_, err := exec.LookPath("tmux")
	return err == nil
}

// Create starts a detached session running cmd (or the user's shell when
// cmd is empty) in cwd. A "duplicate session" stderr is treated as success.
func (a *Adapter) Create(name, cwd, command string) error {
	args := []string{"new-session", "-d", "-s", name, "-c", cwd}
	if command != "" {
		args = append(args, command)
	}
	out, err := a.cmd(args...).CombinedOutput()
	if err != nil {
		if strings.Contains(string(out), "duplicate session") {
			return nil
		}
		return fmt.Errorf("tmux create %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	a.insertCached(name)
	return nil
}

// Kill terminates a session.
func (a *Adapter) Kill(name string) error {
	out, err := a.cmd("kill-session", "-t", name).CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux kill-session %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Capture returns the last `lines` of visible pane content, deduplicating
// concurrent callers via singleflight. Returns "" on a non-zero exit.
func (a *Adapter) Capture(name string, lines int) string {
	key := fmt.Sprintf("%s:%d", name, lines)
	v, _, _ := a.captureSf.Do(key, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		cmd := a.cmdContext(ctx, "capture-pane", "-t", name, "-p", "-J", "-S", fmt.Sprintf("-%d", lines))
		out, err := cmd.Output()
		if err != nil {
			if ctx.Err() == context.DeadlineExceeded {
				return "", ErrCaptureTimeout
			}
			return "", nil
		}
		return string(out), nil
	})
	s, _ := v.(string)
	return s
}

// Send writes keys to a session's pane and appends Enter.
func (a *Adapter) Send(name, keys string) error {
	out, err := a.cmd("send-keys", "-t", name, keys, "Enter").CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux send-keys %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Attach blocks until the user detaches from the session. The caller is
// responsible for saving/restoring its own terminal mode around this call.
func (a *Adapter) Attach(name string) error {
	cmd := a.cmd("attach-session", "-t", name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tmux attach-session %s: %w", name, err)
	}
	return nil
}

// SwitchClient switches the current client to name.
func (a *Adapter) SwitchClient(name string) error {
	out, err := a.cmd("switch-client", "-t", name).CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux switch-client %s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// SetGlobalEnv sets a server-global environment variable on the socket.
func (a *Adapter) SetGlobalEnv(key, value string) error {
	out, err := a.cmd("set-environment", "-g", key, value).CombinedOutput()
	if err != nil {
		return fmt.Errorf("tmux set-environment %s: %w: %s", key, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// GetGlobalEnv reads a server-global environment variable.
func (a *Adapter) GetGlobalEnv(key string) (string, error) {
	out, err := a.cmd("show-environment", "-g", key).Output()
	if err != nil {
		return "", fmt.Errorf("tmux show-environment %s: %w", key, err)
	}
	line := strings.TrimSpace(string(out))
	if idx := strings.Index(line, "="); idx >= 0 {
		return line[idx+1:], nil
	}
	return "", nil
}
