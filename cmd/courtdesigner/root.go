package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/courtdesigner/internal/aidesign"
	"github.com/Faultbox/courtdesigner/internal/config"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/logger"
	"github.com/Faultbox/courtdesigner/internal/session"
)

// app carries what every subcommand needs after PersistentPreRunE.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "courtdesigner",
		Short: "Padel court 3D configurator",
		Long: `courtdesigner composes a parametric padel court scene from a small set of
colors and a glass opacity. Designs can be edited over an HTTP API, previewed
in an OpenGL window, or generated from a text prompt with Gemini.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.LogFile); err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			a.cfg = cfg
			logger.Sugar.Debugf("config: %+v", redacted(cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(a),
		newViewCmd(a),
		newSceneCmd(a),
		newGenerateCmd(a),
		newLocaleCmd(a),
	)
	return root
}

// designer builds the Gemini-backed generator. A missing API key disables
// AI generation only, so it yields a nil designer and no error.
func (a *app) designer(ctx context.Context) (*aidesign.Generator, error) {
	backend, err := aidesign.NewGemini(ctx, a.cfg.AI.APIKey, a.cfg.AI.Model)
	if errors.Is(err, aidesign.ErrMissingAPIKey) {
		logger.Warn("AI design disabled: set GEMINI_API_KEY or ai.api_key to enable it")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Info("AI design enabled", zap.String("model", backend.Model()))
	return aidesign.New(backend,
		aidesign.WithTimeout(a.cfg.AI.Timeout),
		aidesign.WithStrictColors(a.cfg.AI.StrictColors),
	), nil
}

func (a *app) localeStore() *i18n.FileStore {
	return i18n.NewFileStore(a.cfg.LocaleStorePath())
}

// session creates the live design session with the persisted language and
// the AI designer when one is configured.
func (a *app) session(ctx context.Context) (*session.Session, error) {
	opts := session.Options{Store: a.localeStore()}
	gen, err := a.designer(ctx)
	if err != nil {
		return nil, err
	}
	if gen != nil {
		opts.Designer = gen
	}
	return session.New(opts), nil
}

func redacted(cfg *config.Config) config.Config {
	c := *cfg
	if c.AI.APIKey != "" {
		c.AI.APIKey = "***"
	}
	return c
}
