package cli

import (
	"fmt"

	"mdnotes/internal/store"

	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print note titles, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.resolveDir()
			if err != nil {
				return err
			}
			nb := store.Store{Dir: dir}.LoadAll(newCommandLogger())
			for _, title := range nb.Titles() {
				fmt.Fprintln(cmd.OutOrStdout(), title)
			}
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title>",
		Short: "Print a note's content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := app.resolveDir()
			if err != nil {
				return err
			}
			nb := store.Store{Dir: dir}.LoadAll(newCommandLogger())
			idx := nb.FindByTitle(args[0])
			if idx < 0 {
				return errNotFound("note", args[0])
			}
			n, err := nb.Note(idx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Content)
			return nil
		},
	}
}
