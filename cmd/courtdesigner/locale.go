package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Faultbox/courtdesigner/internal/i18n"
)

func newLocaleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locale",
		Short: "Show the persisted display language",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.localeStore().Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "set <en|id>",
		Short:     "Persist the display language",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(i18n.English), string(i18n.Indonesian)},
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, ok := i18n.Parse(args[0])
			if !ok {
				return fmt.Errorf("unsupported language %q", args[0])
			}
			store := a.localeStore()
			if err := store.Save(loc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "language set to %s (%s)\n", loc, store.Path())
			return nil
		},
	})
	return cmd
}
