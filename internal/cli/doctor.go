package cli

import (
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"github.com/claudeisland/island-hook/internal/output"
	"github.com/claudeisland/island-hook/internal/transport"
)

// DoctorCmd probes the transport and ambient discovery without sending a
// status record, for debugging hook installs (especially remote ones).
type DoctorCmd struct {
	Format         string `help:"Output format" default:"table" enum:"table,json"`
	ConnectTimeout string `help:"Dial timeout for the reachability probe" default:"3s"`
}

type doctorReport struct {
	Transport   string `json:"transport,omitempty"`
	Address     string `json:"address,omitempty"`
	TargetError string `json:"target_error,omitempty"`
	Reachable   bool   `json:"reachable"`
	DialError   string `json:"dial_error,omitempty"`
	ParentPID   int    `json:"pid"`
	TTY         string `json:"tty,omitempty"`
	RemoteHost  string `json:"remote_host,omitempty"`
	TmuxPane    string `json:"tmux_pane,omitempty"`
	TmuxTarget  string `json:"tmux_target,omitempty"`
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// Run builds and prints the diagnostic report. The command itself only
// fails on output errors; an unreachable app is a finding, not a failure.
func (c *DoctorCmd) Run(globals *Globals) error {
	report := c.probe(globals)

	if c.Format == "json" {
		return output.NewJSONWriter(globals.Stdout).WriteIndented(report)
	}

	reachability := lo.Ternary(report.Reachable,
		okStyle.Render("reachable"),
		failStyle.Render("unreachable"))
	if report.TargetError != "" {
		reachability = failStyle.Render(report.TargetError)
	}

	table := tablewriter.NewTable(globals.Stdout)
	table.Header("Check", "Result")
	if report.Transport != "" {
		table.Append([]string{"transport", report.Transport + "://" + report.Address})
	}
	table.Append([]string{"app", reachability})
	if report.DialError != "" {
		table.Append([]string{"dial error", dimStyle.Render(report.DialError)})
	}
	table.Append([]string{"claude pid", lo.Ternary(report.ParentPID > 0, strconv.Itoa(report.ParentPID), dimStyle.Render("unknown"))})
	table.Append([]string{"tty", lo.Ternary(report.TTY != "", report.TTY, dimStyle.Render("not found"))})
	table.Append([]string{"remote host", lo.Ternary(report.RemoteHost != "", report.RemoteHost, dimStyle.Render("local session"))})
	if report.RemoteHost != "" {
		table.Append([]string{"tmux target", lo.Ternary(report.TmuxTarget != "", report.TmuxTarget, dimStyle.Render("not in tmux"))})
	}
	return table.Render()
}

func (c *DoctorCmd) probe(globals *Globals) doctorReport {
	report := doctorReport{
		ParentPID:  globals.ParentPID,
		RemoteHost: globals.RemoteHost,
		TmuxPane:   globals.TmuxPane,
	}

	target, err := transport.Resolve(globals.TCP, globals.Socket)
	if err != nil {
		report.TargetError = err.Error()
	} else {
		report.Transport = target.Network
		report.Address = target.Address

		timeout, err := time.ParseDuration(c.ConnectTimeout)
		if err != nil || timeout <= 0 {
			timeout = 3 * time.Second
		}
		if conn, err := transport.NewDialer(target, timeout).Dial(); err != nil {
			report.DialError = err.Error()
		} else {
			report.Reachable = true
			conn.Close()
		}
	}

	if globals.Terminal != nil {
		report.TTY = globals.Terminal.Resolve(globals.ParentPID)
	}
	if globals.RemoteHost != "" && globals.Pane != nil {
		report.TmuxTarget = globals.Pane.Resolve(globals.TmuxPane)
	}
	return report
}
