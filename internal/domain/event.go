package domain

import "encoding/json"

// Hook event names sent by Claude Code. Anything else classifies as unknown.
const (
	EventUserPromptSubmit  = "UserPromptSubmit"
	EventPreToolUse        = "PreToolUse"
	EventPostToolUse       = "PostToolUse"
	EventPermissionRequest = "PermissionRequest"
	EventNotification      = "Notification"
	EventStop              = "Stop"
	EventSubagentStop      = "SubagentStop"
	EventSessionStart      = "SessionStart"
	EventSessionEnd        = "SessionEnd"
	EventPreCompact        = "PreCompact"
)

// Notification subtypes that get special routing.
const (
	NotificationPermissionPrompt = "permission_prompt"
	NotificationIdlePrompt       = "idle_prompt"
)

// HookEvent is the JSON document Claude Code writes to the hook's stdin.
// Every field is optional on the wire; hook_event_name drives dispatch.
type HookEvent struct {
	SessionID        string          `json:"session_id"`
	HookEventName    string          `json:"hook_event_name"`
	Cwd              string          `json:"cwd"`
	ToolName         string          `json:"tool_name"`
	ToolInput        json.RawMessage `json:"tool_input"`
	ToolUseID        string          `json:"tool_use_id"`
	NotificationType string          `json:"notification_type"`
	Message          string          `json:"message"`
}
