package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/scene"
)

func newSceneCmd(a *app) *cobra.Command {
	var (
		lang       string
		patchFile  string
		compact    bool
		clampInput bool
	)

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Print the composed scene graph as JSON",
		Long: `Composes the court scene for the default design, optionally patched with a
JSON file of design fields, and prints it. The language defaults to the
persisted preference.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := a.resolveLocale(lang)
			if err != nil {
				return err
			}

			d := design.Default()
			if patchFile != "" {
				patch, err := readPatch(patchFile)
				if err != nil {
					return err
				}
				if clampInput {
					patch = patch.ClampOpacity()
				}
				d = design.Apply(d, patch)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if !compact {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(scene.Compose(d, loc))
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Label language (en or id)")
	cmd.Flags().StringVar(&patchFile, "design", "", "JSON file with design fields to apply")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print without indentation")
	cmd.Flags().BoolVar(&clampInput, "clamp", true, "Clamp glassOpacity like the manual controls")
	return cmd
}

// resolveLocale parses lang, or loads the persisted preference when empty.
func (a *app) resolveLocale(lang string) (i18n.Locale, error) {
	if lang != "" {
		loc, ok := i18n.Parse(lang)
		if !ok {
			return "", fmt.Errorf("unsupported language %q", lang)
		}
		return loc, nil
	}
	return a.localeStore().Load()
}

func readPatch(path string) (design.Patch, error) {
	var p design.Patch
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read design: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse design %s: %w", path, err)
	}
	return p, nil
}
