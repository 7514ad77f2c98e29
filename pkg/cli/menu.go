package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/mchmarny/hrsite/pkg/menu"
	"github.com/mchmarny/hrsite/pkg/site/content"
)

var (
	rootStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	branchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pathStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	enumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginRight(1)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func newMenuCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Inspect navigation menus",
	}

	cmd.AddCommand(newMenuShowCommand())
	cmd.AddCommand(newMenuValidateCommand())

	return cmd
}

func newMenuShowCommand() *cobra.Command {
	var (
		menuFile  string
		countries bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a menu tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			load := content.Navigation
			if countries {
				load = content.Countries
			}
			m, err := load(menuFile)
			if err != nil {
				return err
			}
			return printMenu(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().StringVarP(&menuFile, "menu", "m", "", "Menu YAML file (default: embedded)")
	cmd.Flags().BoolVar(&countries, "countries", false, "Show the country selector menu")

	return cmd
}

func newMenuValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a menu YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := menu.LoadFile(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(),
				okStyle.Render(fmt.Sprintf("%s: %d nodes, %d leaves", args[0], m.Len(), len(m.Leaves()))))
			return err
		},
	}
}

func printMenu(w io.Writer, m *menu.Menu) error {
	t := tree.Root(rootStyle.Render(m.Title)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	for i := range m.Items {
		t.Child(menuTree(&m.Items[i]))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func menuTree(n *menu.Node) any {
	if n.IsLeaf() {
		return fmt.Sprintf("%s %s", n.Label, pathStyle.Render(n.Path))
	}
	t := tree.Root(branchStyle.Render(n.Label)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumStyle)
	for i := range n.Children {
		t.Child(menuTree(&n.Children[i]))
	}
	return t
}
