package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/claudeisland/island-hook/internal/domain"
	"github.com/claudeisland/island-hook/internal/island"
	"github.com/claudeisland/island-hook/internal/output"
	"github.com/claudeisland/island-hook/internal/status"
	"github.com/claudeisland/island-hook/internal/transport"
)

// HookCmd reads one hook event from stdin, forwards the classified status
// record to the app, and for permission requests writes the app's decision
// directive to stdout. One event, one connection, then exit.
type HookCmd struct{}

// Run executes the bridge. Only unparseable stdin is fatal; every failure
// past that point degrades to skipped delivery or a deferred decision so the
// Claude process is never blocked by app unavailability.
func (c *HookCmd) Run(globals *Globals) error {
	data, err := io.ReadAll(globals.Stdin)
	if err != nil {
		return fmt.Errorf("read hook input: %w", err)
	}

	var ev domain.HookEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return fmt.Errorf("parse hook input: %w", err)
	}

	rec := status.Classify(&ev, c.ambient(globals))
	if rec == nil {
		globals.Debug("suppressed %s notification for session %s", ev.NotificationType, ev.SessionID)
		return nil
	}
	globals.Debug("event %s -> status %s (session %s)", ev.HookEventName, rec.Status, rec.SessionID)

	target, err := transport.Resolve(globals.TCP, globals.Socket)
	if err != nil {
		// Misconfiguration counts as delivery failure, not a hook failure.
		globals.Debug("skipping delivery: %v", err)
		return nil
	}

	client := island.NewClient(
		transport.NewDialer(target, globals.Timeout),
		nil,
		globals.Timeout,
		globals.logger.Sugared(),
	)
	reply := client.Send(rec)

	if rec.Status == domain.StatusWaitingForApproval {
		if directive := domain.TranslateDecision(reply); directive != nil {
			globals.Debug("decision %s for tool %s", reply.Decision, rec.Tool)
			return output.NewJSONWriter(globals.Stdout).Write(directive)
		}
		globals.Debug("no decision, deferring to the interactive prompt")
	}
	return nil
}

// ambient gathers the per-invocation process context. Terminal and pane
// discovery are best-effort; the pane lookup only runs for remote sessions,
// where the app cannot inspect the process tree itself.
func (c *HookCmd) ambient(globals *Globals) status.Ambient {
	amb := status.Ambient{
		PID:        globals.ParentPID,
		RemoteHost: globals.RemoteHost,
	}
	if globals.Terminal != nil {
		amb.TTY = globals.Terminal.Resolve(globals.ParentPID)
	}
	if globals.RemoteHost != "" && globals.Pane != nil {
		amb.TmuxTarget = globals.Pane.Resolve(globals.TmuxPane)
	}
	return amb
}
