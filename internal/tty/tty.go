// Package tty discovers the controlling terminal of the supervised Claude
// process. Discovery is best-effort and never fails upward: the app can
// always render a session without a terminal path.
package tty

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

const probeTimeout = 2 * time.Second

// RunCommand executes an external process and returns its stdout. Pluggable
// so tests never spawn real processes.
type RunCommand func(ctx context.Context, name string, args ...string) (string, error)

func execRun(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	return string(out), err
}

// Resolver maps a pid to its terminal device path via ps, falling back to
// the hook's own stdin/stdout when they are terminals.
type Resolver struct {
	run     RunCommand
	files   []*os.File
	timeout time.Duration
}

// NewResolver builds a resolver using the real ps binary and the process's
// own standard streams as fallbacks.
func NewResolver() *Resolver {
	return &Resolver{
		run:     execRun,
		files:   []*os.File{os.Stdin, os.Stdout},
		timeout: probeTimeout,
	}
}

func newResolverWith(run RunCommand, files ...*os.File) *Resolver {
	return &Resolver{run: run, files: files, timeout: probeTimeout}
}

// Resolve returns the terminal device path for pid, or "" when no usable
// terminal can be discovered by any means.
func (r *Resolver) Resolve(pid int) string {
	if path := r.fromPS(pid); path != "" {
		return path
	}
	for _, f := range r.files {
		if path := terminalName(f); path != "" {
			return path
		}
	}
	return ""
}

// fromPS asks ps for the tty column of the supervised process. ps prints a
// bare device name like "ttys001"; the app expects the full /dev path.
func (r *Resolver) fromPS(pid int) string {
	if r.run == nil || pid <= 0 {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	out, err := r.run(ctx, "ps", "-p", strconv.Itoa(pid), "-o", "tty=")
	if err != nil {
		return ""
	}
	tty := strings.TrimSpace(out)
	if tty == "" || tty == "??" || tty == "-" {
		return ""
	}
	if !strings.HasPrefix(tty, "/dev/") {
		tty = "/dev/" + tty
	}
	return tty
}

// terminalName resolves a file to its terminal device path. The /proc lookup
// only exists on Linux; elsewhere the fallback degrades to absent.
func terminalName(f *os.File) string {
	if f == nil || !isatty.IsTerminal(f.Fd()) {
		return ""
	}
	link, err := os.Readlink(fmt.Sprintf("/proc/self/fd/%d", f.Fd()))
	if err != nil || !strings.HasPrefix(link, "/dev/") {
		return ""
	}
	return link
}
