package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mchmarny/hrsite/pkg/browse"
	"github.com/mchmarny/hrsite/pkg/site/content"
)

func newBrowseCommand() *cobra.Command {
	var menuFile string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the navigation menu in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := content.Navigation(menuFile)
			if err != nil {
				return err
			}

			p := tea.NewProgram(browse.New(m), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&menuFile, "menu", "m", "", "Navigation menu YAML file (default: embedded)")

	return cmd
}
