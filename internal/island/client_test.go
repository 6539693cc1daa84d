package island

import (
	"encoding/json"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeisland/island-hook/internal/domain"
)

// countingConn counts Read/Write calls so tests can assert the exact wire
// interaction pattern (one write, zero or one read).
type countingConn struct {
	net.Conn
	reads  atomic.Int32
	writes atomic.Int32
}

func (c *countingConn) Read(p []byte) (int, error) {
	c.reads.Add(1)
	return c.Conn.Read(p)
}

func (c *countingConn) Write(p []byte) (int, error) {
	c.writes.Add(1)
	return c.Conn.Write(p)
}

type fakeDialer struct {
	conn net.Conn
	err  error
}

func (d *fakeDialer) Dial() (net.Conn, error) { return d.conn, d.err }

// pipeApp wires a client conn to an in-process fake app handler.
func pipeApp(t *testing.T, handler func(conn net.Conn)) *countingConn {
	t.Helper()
	clientSide, appSide := net.Pipe()
	go handler(appSide)
	return &countingConn{Conn: clientSide}
}

func TestSend_FireAndForget(t *testing.T) {
	received := make(chan []byte, 1)
	conn := pipeApp(t, func(conn net.Conn) {
		defer conn.Close()
		buf := make([]byte, 8192)
		n, _ := conn.Read(buf)
		received <- buf[:n]
	})

	client := NewClient(&fakeDialer{conn: conn}, nil, time.Second, nil)
	rec := &domain.StatusRecord{SessionID: "s-1", Event: "Stop", Status: domain.StatusWaitingForInput}

	reply := client.Send(rec)
	assert.Nil(t, reply)
	assert.Equal(t, int32(1), conn.writes.Load())
	assert.Equal(t, int32(0), conn.reads.Load())

	select {
	case payload := <-received:
		var got domain.StatusRecord
		require.NoError(t, json.Unmarshal(payload, &got))
		assert.Equal(t, domain.StatusWaitingForInput, got.Status)
		assert.Equal(t, "s-1", got.SessionID)
	case <-time.After(time.Second):
		t.Fatal("app never received the record")
	}
}

func TestSend_ApprovalWaitsForDecision(t *testing.T) {
	conn := pipeApp(t, func(conn net.Conn) {
		defer conn.Close()
		buf := make([]byte, 8192)
		if _, err := conn.Read(buf); err != nil {
			return
		}
		conn.Write([]byte(`{"decision":"deny","reason":"not on my watch"}`))
	})

	client := NewClient(&fakeDialer{conn: conn}, nil, time.Second, nil)
	rec := &domain.StatusRecord{Event: "PermissionRequest", Status: domain.StatusWaitingForApproval}

	reply := client.Send(rec)
	require.NotNil(t, reply)
	assert.Equal(t, "deny", reply.Decision)
	assert.Equal(t, "not on my watch", reply.Reason)
	assert.Equal(t, int32(1), conn.writes.Load())
	assert.Equal(t, int32(1), conn.reads.Load())
}

func TestSend_ApprovalTimeout(t *testing.T) {
	conn := pipeApp(t, func(conn net.Conn) {
		// Read the request but never answer.
		buf := make([]byte, 8192)
		conn.Read(buf)
	})

	client := NewClient(&fakeDialer{conn: conn}, nil, 50*time.Millisecond, nil)
	rec := &domain.StatusRecord{Status: domain.StatusWaitingForApproval}

	start := time.Now()
	reply := client.Send(rec)
	assert.Nil(t, reply)
	assert.Less(t, time.Since(start), time.Second, "timeout must unblock the read")
}

func TestSend_ApprovalPeerDisconnect(t *testing.T) {
	conn := pipeApp(t, func(conn net.Conn) {
		buf := make([]byte, 8192)
		conn.Read(buf)
		conn.Close()
	})

	client := NewClient(&fakeDialer{conn: conn}, nil, time.Second, nil)
	reply := client.Send(&domain.StatusRecord{Status: domain.StatusWaitingForApproval})
	assert.Nil(t, reply)
}

func TestSend_MalformedReplyIsNoReply(t *testing.T) {
	conn := pipeApp(t, func(conn net.Conn) {
		defer conn.Close()
		buf := make([]byte, 8192)
		conn.Read(buf)
		conn.Write([]byte("not json"))
	})

	client := NewClient(&fakeDialer{conn: conn}, nil, time.Second, nil)
	reply := client.Send(&domain.StatusRecord{Status: domain.StatusWaitingForApproval})
	assert.Nil(t, reply)
}

func TestSend_DialFailureIsNoReply(t *testing.T) {
	client := NewClient(&fakeDialer{err: errors.New("connection refused")}, nil, time.Second, nil)
	reply := client.Send(&domain.StatusRecord{Status: domain.StatusWaitingForApproval})
	assert.Nil(t, reply)
}
