package domain

// Decision values the app may return for a waiting_for_approval record.
const (
	DecisionAllow = "allow"
	DecisionDeny  = "deny"
	DecisionAsk   = "ask"
)

// DefaultDenyMessage is shown when the app denies without a reason.
const DefaultDenyMessage = "Denied by user via ClaudeIsland"

// DecisionReply is the app's answer to a permission request. A missing or
// unrecognized decision means "ask": fall through to Claude Code's own prompt.
type DecisionReply struct {
	Decision string `json:"decision"`
	Reason   string `json:"reason,omitempty"`
}

// HookOutput is the directive written to stdout for PermissionRequest hooks.
// Claude Code reads hookSpecificOutput.decision to bypass its own prompt.
type HookOutput struct {
	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

type HookSpecificOutput struct {
	HookEventName string              `json:"hookEventName"`
	Decision      *PermissionDecision `json:"decision,omitempty"`
}

type PermissionDecision struct {
	Behavior string `json:"behavior"`
	Message  string `json:"message,omitempty"`
}

// TranslateDecision converts the app's reply into a hook directive. A nil
// return means no directive is emitted and Claude Code shows its normal
// permission UI. That covers no reply, timeouts, and decision "ask".
func TranslateDecision(reply *DecisionReply) *HookOutput {
	if reply == nil {
		return nil
	}
	switch reply.Decision {
	case DecisionAllow:
		return &HookOutput{
			HookSpecificOutput: &HookSpecificOutput{
				HookEventName: EventPermissionRequest,
				Decision:      &PermissionDecision{Behavior: DecisionAllow},
			},
		}
	case DecisionDeny:
		message := reply.Reason
		if message == "" {
			message = DefaultDenyMessage
		}
		return &HookOutput{
			HookSpecificOutput: &HookSpecificOutput{
				HookEventName: EventPermissionRequest,
				Decision:      &PermissionDecision{Behavior: DecisionDeny, Message: message},
			},
		}
	default:
		return nil
	}
}
