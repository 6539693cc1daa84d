// Package status maps Claude Code hook events onto the session-status model
// understood by the ClaudeIsland app.
package status

import (
	"github.com/samber/lo"

	"github.com/claudeisland/island-hook/internal/domain"
)

// Ambient is the per-invocation context discovered outside the hook input:
// the supervised process and where its terminal lives.
type Ambient struct {
	// PID of the Claude process (the hook's parent).
	PID int
	// TTY is the controlling terminal device path, empty if undiscoverable.
	TTY string
	// RemoteHost is set when the session runs behind an SSH tunnel.
	RemoteHost string
	// TmuxTarget is the session:window.pane descriptor, only resolved when
	// RemoteHost is set.
	TmuxTarget string
}

// Classify builds the status record for one hook event. It is a total
// mapping: unrecognized events produce a record with status "unknown".
// A nil return means the event is suppressed and nothing should be sent
// (permission_prompt notifications duplicate the PermissionRequest hook,
// which carries better information).
func Classify(ev *domain.HookEvent, amb Ambient) *domain.StatusRecord {
	rec := &domain.StatusRecord{
		SessionID:  lo.CoalesceOrEmpty(ev.SessionID, domain.UnknownSessionID),
		Cwd:        ev.Cwd,
		Event:      ev.HookEventName,
		PID:        amb.PID,
		TTY:        amb.TTY,
		RemoteHost: amb.RemoteHost,
		TmuxTarget: amb.TmuxTarget,
	}

	switch ev.HookEventName {
	case domain.EventUserPromptSubmit:
		rec.Status = domain.StatusProcessing

	case domain.EventPreToolUse:
		rec.Status = domain.StatusRunningTool
		rec.Tool = ev.ToolName
		rec.ToolInput = ev.ToolInput
		rec.ToolUseID = ev.ToolUseID

	case domain.EventPostToolUse:
		rec.Status = domain.StatusProcessing
		rec.Tool = ev.ToolName
		rec.ToolInput = ev.ToolInput
		rec.ToolUseID = ev.ToolUseID

	case domain.EventPermissionRequest:
		rec.Status = domain.StatusWaitingForApproval
		rec.Tool = ev.ToolName
		rec.ToolInput = ev.ToolInput
		// tool_use_id correlation is handled app-side from the PreToolUse record.

	case domain.EventNotification:
		switch ev.NotificationType {
		case domain.NotificationPermissionPrompt:
			return nil
		case domain.NotificationIdlePrompt:
			rec.Status = domain.StatusWaitingForInput
		default:
			rec.Status = domain.StatusNotification
		}
		rec.NotificationType = ev.NotificationType
		rec.Message = ev.Message

	case domain.EventStop, domain.EventSubagentStop, domain.EventSessionStart:
		rec.Status = domain.StatusWaitingForInput

	case domain.EventSessionEnd:
		rec.Status = domain.StatusEnded

	case domain.EventPreCompact:
		rec.Status = domain.StatusCompacting

	default:
		rec.Status = domain.StatusUnknown
	}

	return rec
}
