// Package cli wires the hrsite commands.
package cli

import (
	"github.com/spf13/cobra"
)

// Module names the binary in logs.
const Module = "hrsite"

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           Module,
		Short:         "Peoplewise marketing site",
		Long:          "hrsite serves the Peoplewise marketing site and inspects its navigation menus.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand(version))
	cmd.AddCommand(newMenuCommand())
	cmd.AddCommand(newBrowseCommand())

	return cmd
}
