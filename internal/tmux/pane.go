// Package tmux resolves the pane hosting the supervised Claude process into
// a full "session:window.pane" descriptor so the app can focus it on a
// remote machine. Resolution is best-effort and bounded: a wedged tmux
// server must not stall hook delivery.
package tmux

import (
	"fmt"
	"time"

	"github.com/GianlucaP106/gotmux/gotmux"
	"github.com/benbjohnson/clock"
)

const queryTimeout = 2 * time.Second

// LookupFunc resolves a pane id (the $TMUX_PANE value, e.g. "%42") to a
// descriptor by querying the tmux server.
type LookupFunc func(paneID string) (string, error)

// PaneResolver wraps a lookup with a hard time bound and a fallback chain:
// full descriptor, then the raw pane id, then absent.
type PaneResolver struct {
	lookup  LookupFunc
	clock   clock.Clock
	timeout time.Duration
}

// NewPaneResolver builds a resolver backed by the local tmux server.
func NewPaneResolver() *PaneResolver {
	return &PaneResolver{lookup: serverLookup, clock: clock.New(), timeout: queryTimeout}
}

func newPaneResolverWith(lookup LookupFunc, clk clock.Clock) *PaneResolver {
	return &PaneResolver{lookup: lookup, clock: clk, timeout: queryTimeout}
}

// Resolve returns the best descriptor available for paneID within the time
// bound. Empty input means the process is not in a tmux pane.
func (r *PaneResolver) Resolve(paneID string) string {
	if paneID == "" {
		return ""
	}

	type result struct {
		target string
		err    error
	}
	ch := make(chan result, 1)
	go func() {
		target, err := r.lookup(paneID)
		ch <- result{target, err}
	}()

	select {
	case res := <-ch:
		if res.err == nil && res.target != "" {
			return res.target
		}
	case <-r.clock.After(r.timeout):
	}
	return paneID
}

// serverLookup walks the tmux object tree for the pane and rebuilds the
// session:window.pane descriptor from its coordinates.
func serverLookup(paneID string) (string, error) {
	tmux, err := gotmux.DefaultTmux()
	if err != nil {
		return "", err
	}
	sessions, err := tmux.ListSessions()
	if err != nil {
		return "", err
	}
	for _, session := range sessions {
		windows, err := session.ListWindows()
		if err != nil {
			continue
		}
		for _, window := range windows {
			panes, err := window.ListPanes()
			if err != nil {
				continue
			}
			for _, pane := range panes {
				if pane.Id == paneID {
					return fmt.Sprintf("%s:%d.%d", session.Name, window.Index, pane.Index), nil
				}
			}
		}
	}
	return "", fmt.Errorf("pane %s not found", paneID)
}
