package domain

import "encoding/json"

// Status is the normalized session state shown by the ClaudeIsland app.
type Status string

const (
	StatusProcessing         Status = "processing"
	StatusRunningTool        Status = "running_tool"
	StatusWaitingForApproval Status = "waiting_for_approval"
	StatusWaitingForInput    Status = "waiting_for_input"
	StatusEnded              Status = "ended"
	StatusCompacting         Status = "compacting"
	StatusNotification       Status = "notification"
	StatusUnknown            Status = "unknown"
)

// UnknownSessionID is used when the hook input carries no session_id.
const UnknownSessionID = "unknown"

// StatusRecord is the single payload type sent to the app. Fields that are
// irrelevant for a given status are omitted from the wire payload entirely,
// never null-filled.
type StatusRecord struct {
	SessionID  string `json:"session_id"`
	Cwd        string `json:"cwd"`
	Event      string `json:"event"`
	PID        int    `json:"pid"`
	TTY        string `json:"tty,omitempty"`
	RemoteHost string `json:"remote_host,omitempty"`
	TmuxTarget string `json:"tmux_target,omitempty"`
	Status     Status `json:"status"`

	// Present only for tool-related statuses.
	Tool      string          `json:"tool,omitempty"`
	ToolInput json.RawMessage `json:"tool_input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`

	// Present only for notification statuses.
	NotificationType string `json:"notification_type,omitempty"`
	Message          string `json:"message,omitempty"`
}
