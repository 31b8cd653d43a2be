package mux

import (
	"fmt"
	"log/slog"
)

// Default key specs for the three root-level bindings, in human form.
const (
	DefaultDetachKey   = "ctrl+q"
	DefaultSwitcherKey = "ctrl+g"
	DefaultJumpKey     = "ctrl+n"
)

// Global env vars used to memoize binding state across invocations.
const (
	EnvDetachKey   = "AGENTHAND_DETACH_KEY"
	EnvSwitcherKey = "AGENTHAND_SWITCHER_KEY"
	EnvJumpKey     = "AGENTHAND_JUMP_KEY"

	EnvLastSession   = "AGENTHAND_LAST_SESSION"
	EnvLastDetachAt  = "AGENTHAND_LAST_DETACH_AT"
	EnvPrioritySession = "AGENTHAND_PRIORITY_SESSION"
)

// BindingSpec is the configured key for each logical action, in human form
// ("ctrl+g") or native tmux form ("C-g").
type BindingSpec struct {
	DetachKey   string
	SwitcherKey string
	JumpKey     string
	SelfBinary  string // path to this tool's own binary, for popup/statusline commands
}

// withDefaults only fills SelfBinary: DetachKey/SwitcherKey/JumpKey are
// expected to already be fully resolved (default, custom, or "" for
// explicitly disabled) by keyconfig.File.ResolvedTmuxKeys before reaching
// here — refilling them from the package defaults would silently
// re-enable a binding the user turned off.
func (b BindingSpec) withDefaults() BindingSpec {
	if b.SelfBinary == "" {
		b.SelfBinary = "agent-hand"
	}
	return b
}

// EnsureServerBindings installs each detach/switcher/jump key binding only
// when the configured key differs from what's already memoized in the
// global env, so concurrent invocations skip the rebinding. The statusline
// status-left and status-interval options are set on every call. Best
// effort: failures are logged, never fatal.
// A "" key (DetachKey/SwitcherKey/JumpKey) skips that binding entirely.
func (a *Adapter) EnsureServerBindings(spec BindingSpec) {
	spec = spec.withDefaults()

	if spec.DetachKey != "" && a.needsRebind(EnvDetachKey, spec.DetachKey) {
		a.bindDetachKey(spec.DetachKey)
	}
	if spec.SwitcherKey != "" && a.needsRebind(EnvSwitcherKey, spec.SwitcherKey) {
		a.bindSwitcherKey(spec.SwitcherKey, spec.SelfBinary)
	}
	if spec.JumpKey != "" && a.needsRebind(EnvJumpKey, spec.JumpKey) {
		a.bindJumpKey(spec.JumpKey)
	}
	a.setStatusLeft(spec.SelfBinary)
}

func (a *Adapter) needsRebind(envVar, desired string) bool {
	current, err := a.GetGlobalEnv(envVar)
	if err != nil {
		return true
	}
	return current != desired
}

func (a *Adapter) bindDetachKey(keySpec string) {
	key := TranslateKey(keySpec)
	_, _ = a.cmd("unbind-key", "-n", key).CombinedOutput()
	cmd := fmt.Sprintf(
		`set-environment -g %s "#{session_name}" %s set-environment -g %s "#{client_activity}" %s detach-client`,
		EnvLastSession, `\;`, EnvLastDetachAt, `\;`,
	)
	if out, err := a.cmd("bind-key", "-n", key, cmd).CombinedOutput(); err != nil {
		muxLog.Warn("bind_detach_key_failed", slog.String("error", err.Error()), slog.String("output", string(out)))
		return
	}
	_ = a.SetGlobalEnv(EnvDetachKey, keySpec)
}

func (a *Adapter) bindSwitcherKey(keySpec, selfBinary string) {
	key := TranslateKey(keySpec)
	_, _ = a.cmd("unbind-key", "-n", key).CombinedOutput()
	popupCmd := fmt.Sprintf("display-popup -E \"%s switch\"", selfBinary)
	if out, err := a.cmd("bind-key", "-n", key, popupCmd).CombinedOutput(); err != nil {
		muxLog.Warn("bind_switcher_key_failed", slog.String("error", err.Error()), slog.String("output", string(out)))
		return
	}
	_ = a.SetGlobalEnv(EnvSwitcherKey, keySpec)
}

func (a *Adapter) bindJumpKey(keySpec string) {
	key := TranslateKey(keySpec)
	_, _ = a.cmd("unbind-key", "-n", key).CombinedOutput()
	runShell := fmt.Sprintf(
		`run-shell "tmux -L %s switch-client -t \"$(tmux -L %s show-environment -g %s | cut -d= -f2-)\" 2>/dev/null || tmux -L %s display-message 'no target'"`,
		SocketName, SocketName, EnvPrioritySession, SocketName,
	)
	if out, err := a.cmd("bind-key", "-n", key, runShell).CombinedOutput(); err != nil {
		muxLog.Warn("bind_jump_key_failed", slog.String("error", err.Error()), slog.String("output", string(out)))
		return
	}
	_ = a.SetGlobalEnv(EnvJumpKey, keySpec)
}

func (a *Adapter) setStatusLeft(selfBinary string) {
	statusCmd := fmt.Sprintf("#(%s statusline)", selfBinary)
	_, _ = a.cmd("set-option", "-g", "status-left", statusCmd).CombinedOutput()
	_, _ = a.cmd("set-option", "-g", "status-interval", "5").CombinedOutput()
}
