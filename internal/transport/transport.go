// Package transport selects and dials the byte-stream channel to the
// ClaudeIsland app: a unix socket by default, TCP when a target is
// configured (remote sessions over an SSH tunnel).
package transport

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// DefaultSocketPath is the well-known endpoint the app listens on.
const DefaultSocketPath = "/tmp/claude-island.sock"

// DefaultTimeout bounds connect, send and the permission-reply read.
const DefaultTimeout = 300 * time.Second

// Target is a resolved transport endpoint.
type Target struct {
	Network string // "unix" or "tcp"
	Address string
}

func (t Target) String() string {
	return fmt.Sprintf("%s://%s", t.Network, t.Address)
}

// ConfigError reports a malformed transport target. The bridge treats it
// like any other delivery failure: log and skip, never crash the hook.
type ConfigError struct {
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid transport target %q: %s", e.Value, e.Reason)
}

// Resolve picks the endpoint for this invocation. tcpTarget takes the forms
// "host:port" and "port" (host defaults to localhost); when empty the unix
// socket at socketPath is used, falling back to DefaultSocketPath.
func Resolve(tcpTarget, socketPath string) (Target, error) {
	if tcpTarget == "" {
		if socketPath == "" {
			socketPath = DefaultSocketPath
		}
		return Target{Network: "unix", Address: socketPath}, nil
	}

	host := "localhost"
	portStr := tcpTarget
	if i := strings.LastIndex(tcpTarget, ":"); i >= 0 {
		host = tcpTarget[:i]
		portStr = tcpTarget[i+1:]
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return Target{}, &ConfigError{Value: tcpTarget, Reason: "port is not a number"}
	}
	if port < 1 || port > 65535 {
		return Target{}, &ConfigError{Value: tcpTarget, Reason: "port out of range"}
	}

	return Target{Network: "tcp", Address: net.JoinHostPort(host, strconv.Itoa(port))}, nil
}

// Dialer produces one connection per invocation. It is an interface so the
// island client can be tested against in-memory pipes.
type Dialer interface {
	Dial() (net.Conn, error)
}

// NetDialer dials the resolved target with a bounded connect timeout.
type NetDialer struct {
	Target  Target
	Timeout time.Duration
}

// NewDialer builds a NetDialer, defaulting the timeout.
func NewDialer(target Target, timeout time.Duration) *NetDialer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &NetDialer{Target: target, Timeout: timeout}
}

// Dial connects to the target. Failures (refused, missing socket, timeout)
// are returned wrapped; callers decide whether that is fatal.
func (d *NetDialer) Dial() (net.Conn, error) {
	conn, err := net.DialTimeout(d.Target.Network, d.Target.Address, d.Timeout)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", d.Target, err)
	}
	return conn, nil
}
