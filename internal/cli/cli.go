// Package cli wires the island-hook commands together. The default command
// is the hook itself so Claude Code can invoke the bare binary.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/claudeisland/island-hook/internal/config"
	"github.com/claudeisland/island-hook/internal/tmux"
	"github.com/claudeisland/island-hook/internal/tty"
)

// CLI is the top-level kong command tree. Flag defaults come from the
// config/env layer via kong vars; explicit flags win.
type CLI struct {
	Socket     string `help:"Unix socket path of the ClaudeIsland app" default:"${config_socket}"`
	TCP        string `name:"tcp" help:"TCP target (host:port or port) for remote sessions" default:"${config_tcp}"`
	RemoteHost string `help:"SSH host name identifying this remote session" default:"${config_remote_host}"`
	Timeout    string `help:"Delivery and permission-decision timeout" default:"${config_timeout}"`
	Verbose    bool   `short:"v" help:"Log debug diagnostics to stderr"`

	Hook    HookCmd    `cmd:"" default:"1" help:"Forward one hook event from stdin to the app"`
	Doctor  DoctorCmd  `cmd:"" help:"Diagnose connectivity and ambient discovery"`
	Version VersionCmd `cmd:"" help:"Print version"`
}

// terminalResolver and paneResolver are the ambient discovery capabilities;
// commands only see the interfaces so tests can substitute pure fakes.
type terminalResolver interface {
	Resolve(pid int) string
}

type paneResolver interface {
	Resolve(paneID string) string
}

// Globals carries resolved settings and process context into commands.
type Globals struct {
	Socket     string
	TCP        string
	RemoteHost string
	Timeout    time.Duration
	Verbose    bool

	// ParentPID is the Claude process being supervised (the hook's parent).
	ParentPID int
	// TmuxPane is the raw $TMUX_PANE value, empty outside tmux.
	TmuxPane string

	Terminal terminalResolver
	Pane     paneResolver

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	logger *hookLogger
}

// NewGlobalsWithConfig merges parsed flags with the config layer and binds
// the real process environment.
func NewGlobalsWithConfig(c *CLI, cfg *config.Config) *Globals {
	verbose := c.Verbose || cfg.Verbose
	timeout := (&config.Config{Timeout: c.Timeout}).TimeoutDuration()

	return &Globals{
		Socket:     c.Socket,
		TCP:        c.TCP,
		RemoteHost: c.RemoteHost,
		Timeout:    timeout,
		Verbose:    verbose,
		ParentPID:  os.Getppid(),
		TmuxPane:   os.Getenv("TMUX_PANE"),
		Terminal:   tty.NewResolver(),
		Pane:       tmux.NewPaneResolver(),
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		logger:     newHookLogger(verbose),
	}
}

// Debug logs a diagnostic line to stderr when verbose is enabled.
func (g *Globals) Debug(format string, args ...interface{}) {
	if g.logger != nil {
		g.logger.Debug(format, args...)
	}
}
