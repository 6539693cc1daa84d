// Package island implements the one-shot exchange with the ClaudeIsland app:
// send a status record, and for permission requests wait for the decision.
package island

import (
	"encoding/json"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/claudeisland/island-hook/internal/domain"
	"github.com/claudeisland/island-hook/internal/transport"
)

// replyBufferSize matches the app's single-write reply size. Replies are not
// length-framed; one bounded read captures the whole document.
const replyBufferSize = 4096

// Client owns exactly one connection per Send call. It never returns an
// error: the supervised Claude process must keep running even when the app
// is unreachable, so every failure degrades to "no reply".
type Client struct {
	dialer  transport.Dialer
	clock   clock.Clock
	timeout time.Duration
	log     *zap.SugaredLogger
}

// NewClient builds a client. clk and log may be nil; timeout <= 0 uses the
// transport default.
func NewClient(dialer transport.Dialer, clk clock.Clock, timeout time.Duration, log *zap.SugaredLogger) *Client {
	if clk == nil {
		clk = clock.New()
	}
	if timeout <= 0 {
		timeout = transport.DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{dialer: dialer, clock: clk, timeout: timeout, log: log}
}

// Send delivers one status record. For waiting_for_approval it blocks on a
// single bounded read for the app's decision; for everything else it is
// fire-and-forget and the connection close marks the message boundary.
// A nil return means no usable reply (not sent, timed out, or malformed).
func (c *Client) Send(rec *domain.StatusRecord) *domain.DecisionReply {
	payload, err := json.Marshal(rec)
	if err != nil {
		c.log.Debugw("marshal status record failed", "error", err)
		return nil
	}

	conn, err := c.dialer.Dial()
	if err != nil {
		c.log.Debugw("app unreachable, skipping delivery", "error", err)
		return nil
	}
	defer conn.Close()

	if err := conn.SetDeadline(c.clock.Now().Add(c.timeout)); err != nil {
		c.log.Debugw("set deadline failed", "error", err)
	}

	if _, err := conn.Write(payload); err != nil {
		c.log.Debugw("send failed", "status", rec.Status, "error", err)
		return nil
	}

	if rec.Status != domain.StatusWaitingForApproval {
		return nil
	}

	buf := make([]byte, replyBufferSize)
	n, err := conn.Read(buf)
	if err != nil || n == 0 {
		c.log.Debugw("no decision received", "error", err)
		return nil
	}

	var reply domain.DecisionReply
	if err := json.Unmarshal(buf[:n], &reply); err != nil {
		c.log.Debugw("malformed decision reply", "error", err)
		return nil
	}
	return &reply
}
