package main

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/courtdesigner/internal/aidesign"
	"github.com/Faultbox/courtdesigner/internal/design"
)

func newGenerateCmd(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate a design from a text prompt and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.resolveLocale(lang)
			if err != nil {
				return err
			}

			gen, err := a.designer(cmd.Context())
			if err != nil {
				return err
			}
			if gen == nil {
				return aidesign.ErrMissingAPIKey
			}

			patch, err := gen.Generate(cmd.Context(), strings.Join(args, " "), loc)
			if err != nil {
				var failure *aidesign.GenerationFailure
				if errors.As(err, &failure) {
					cmd.PrintErrln(failure.Message)
				}
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(design.Apply(design.Default(), patch))
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Prompt language (en or id)")
	return cmd
}
