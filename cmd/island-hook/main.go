package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/claudeisland/island-hook/internal/cli"
	"github.com/claudeisland/island-hook/internal/config"
)

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Config/env values become flag defaults; explicit flags override them
	vars := kong.Vars{
		"config_socket":      cfg.Socket,
		"config_tcp":         cfg.TCP,
		"config_remote_host": cfg.RemoteHost,
		"config_timeout":     cfg.Timeout,
	}

	ctx := kong.Parse(&c,
		kong.Name("island-hook"),
		kong.Description("Claude Code hook bridge for the ClaudeIsland app.\n\nReads one hook event from stdin and forwards the session status; for PermissionRequest events it waits for the app's allow/deny decision."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	if err := ctx.Run(globals); err != nil {
		// Exit 1 tells Claude Code the hook could not process the event.
		fmt.Fprintf(os.Stderr, "island-hook: %v\n", err)
		os.Exit(1)
	}
}
