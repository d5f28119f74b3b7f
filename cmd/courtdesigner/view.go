package main

import (
	"context"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/courtdesigner/internal/viewer"
)

func newViewCmd(a *app) *cobra.Command {
	var serve bool

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the 3D preview window",
		Long: `Opens an OpenGL preview of the court. With --serve the HTTP API runs
alongside the window and every change made through it shows up live.

Controls: left drag orbits, right drag pans, the wheel zooms, C resets the
camera, R resets the design, L switches language, Escape quits.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sess, err := a.session(ctx)
			if err != nil {
				return err
			}

			g, gctx := errgroup.WithContext(ctx)
			if serve {
				serveAPI(gctx, g, a, sess)
			}

			v, err := viewer.New(a.cfg.Viewer, sess)
			if err != nil {
				cancel()
				_ = g.Wait()
				return err
			}
			defer v.Close()

			// The render loop owns the main thread.
			runErr := v.Run()
			cancel()
			if err := g.Wait(); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().BoolVar(&serve, "serve", false, "Also serve the HTTP API")
	return cmd
}
