package cli

import (
	"strings"

	"mdnotes/internal/store"
	"mdnotes/internal/tui"

	"github.com/spf13/cobra"
)

// App carries the persistent flag values shared by all commands.
type App struct {
	Dir string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "mdnotes",
		Short:        "Bounded, file-backed personal notes (TUI + scriptable commands)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  mdnotes

  # Scriptable commands
  mdnotes list
  mdnotes show Groceries
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", "", "Path to the notes dir (default: discovered .mdnotes, else ./.mdnotes)")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	return cmd
}

func (a *App) resolveDir() (string, error) {
	if strings.TrimSpace(a.Dir) != "" {
		return a.Dir, nil
	}
	return store.DefaultDir()
}

func runTUI(a *App) error {
	dir, err := a.resolveDir()
	if err != nil {
		return err
	}
	return tui.Run(dir, newTUILogger())
}
