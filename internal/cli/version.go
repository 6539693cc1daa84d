package cli

import "fmt"

// Version is stamped by the release build via -ldflags.
var Version = "dev"

// VersionCmd prints the build version.
type VersionCmd struct{}

func (c *VersionCmd) Run(globals *Globals) error {
	_, err := fmt.Fprintln(globals.Stdout, Version)
	return err
}
