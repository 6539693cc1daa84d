package cli

import (
	"encoding/json"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorCmd_JSONReachable(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "island.sock")
	ln, err := net.Listen("unix", socket)
	require.NoError(t, err)
	defer ln.Close()
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	globals, stdout, _ := testGlobals("", socket)
	cmd := &DoctorCmd{Format: "json", ConnectTimeout: "1s"}

	require.NoError(t, cmd.Run(globals))

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, true, report["reachable"])
	assert.Equal(t, "unix", report["transport"])
	assert.Equal(t, socket, report["address"])
	assert.Equal(t, "/dev/ttys001", report["tty"])
}

func TestDoctorCmd_JSONUnreachable(t *testing.T) {
	globals, stdout, _ := testGlobals("", filepath.Join(t.TempDir(), "gone.sock"))
	cmd := &DoctorCmd{Format: "json", ConnectTimeout: "100ms"}

	// An unreachable app is a finding, not a command failure.
	require.NoError(t, cmd.Run(globals))

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, false, report["reachable"])
	assert.NotEmpty(t, report["dial_error"])
}

func TestDoctorCmd_JSONBadTarget(t *testing.T) {
	globals, stdout, _ := testGlobals("", "")
	globals.TCP = "localhost:not-a-port"
	cmd := &DoctorCmd{Format: "json", ConnectTimeout: "100ms"}

	require.NoError(t, cmd.Run(globals))

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	assert.Equal(t, false, report["reachable"])
	assert.Contains(t, report["target_error"], "invalid transport target")
}

func TestDoctorCmd_TableOutput(t *testing.T) {
	globals, stdout, _ := testGlobals("", filepath.Join(t.TempDir(), "gone.sock"))
	globals.RemoteHost = "cluster"
	globals.TmuxPane = "%7"
	cmd := &DoctorCmd{Format: "table", ConnectTimeout: "100ms"}

	require.NoError(t, cmd.Run(globals))

	out := stdout.String()
	assert.Contains(t, out, "transport")
	assert.Contains(t, out, "cluster")
	assert.Contains(t, out, "tmux target")
}

func TestDoctorCmd_NeverSendsARecord(t *testing.T) {
	socket, received := fakeApp(t, "")
	globals, _, _ := testGlobals("", socket)
	cmd := &DoctorCmd{Format: "json", ConnectTimeout: "1s"}

	require.NoError(t, cmd.Run(globals))

	select {
	case payload := <-received:
		t.Fatalf("doctor wrote %q to the app", payload)
	default:
	}
}
