package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/courtdesigner/internal/logger"
	"github.com/Faultbox/courtdesigner/internal/server"
	"github.com/Faultbox/courtdesigner/internal/session"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the design HTTP API for the browser UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			sess, err := a.session(ctx)
			if err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(ctx)
			serveAPI(ctx, g, a, sess)
			return g.Wait()
		},
	}
}

// serveAPI starts the HTTP API in g and logs every published snapshot.
func serveAPI(ctx context.Context, g *errgroup.Group, a *app, sess *session.Session) {
	log := logger.Named("api")
	cancel := sess.Subscribe(func(s session.Snapshot) {
		log.Debug("design changed",
			zap.Uint64("seq", s.Seq),
			zap.String("locale", s.Locale.String()),
			zap.String("courtColor", s.Design.CourtColor))
	})

	srv := server.New(a.cfg.Server, sess)
	g.Go(func() error {
		defer cancel()
		return srv.Run(ctx)
	})
}
