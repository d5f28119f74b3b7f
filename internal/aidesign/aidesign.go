// Package aidesign turns a natural-language prompt into a partial court
// design by asking a remote structured-generation service.
package aidesign

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/logger"
	"github.com/Faultbox/courtdesigner/pkg/color"
)

// ErrMissingAPIKey is returned when the generation service has no API key.
// Only the AI feature is disabled; manual editing keeps working.
var ErrMissingAPIKey = errors.New("aidesign: API key not configured")

// ErrEmptyPrompt is the cause carried by a GenerationFailure for a blank prompt.
var ErrEmptyPrompt = errors.New("aidesign: empty prompt")

// GenerationFailure is returned for every failed generation. Message is the
// user-facing text in the request locale.
type GenerationFailure struct {
	Locale  i18n.Locale
	Message string
	Cause   error
}

func (e *GenerationFailure) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *GenerationFailure) Unwrap() error {
	return e.Cause
}

// Request is one structured-generation call.
type Request struct {
	SystemInstruction string
	Prompt            string
}

// Backend performs a structured-generation call and returns the raw JSON
// text of the response.
type Backend interface {
	GenerateJSON(ctx context.Context, req Request) (string, error)
}

// Generator builds design patches from prompts.
type Generator struct {
	backend      Backend
	timeout      time.Duration
	strictColors bool
	log          *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithTimeout bounds each request. Zero means no extra deadline.
func WithTimeout(d time.Duration) Option {
	return func(g *Generator) { g.timeout = d }
}

// WithStrictColors drops color fields that do not parse as colors.
func WithStrictColors(strict bool) Option {
	return func(g *Generator) { g.strictColors = strict }
}

// WithLogger overrides the component logger.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New creates a Generator on top of backend.
func New(backend Backend, opts ...Option) *Generator {
	g := &Generator{
		backend:      backend,
		strictColors: true,
		log:          logger.Named("aidesign"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate asks the backend for a design matching prompt. The system
// instruction and the prompt prefix follow loc. Any failure is reported as
// a *GenerationFailure carrying the localized message; the call is never
// retried.
func (g *Generator) Generate(ctx context.Context, prompt string, loc i18n.Locale) (design.Patch, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return design.Patch{}, g.fail(loc, ErrEmptyPrompt)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req := Request{
		SystemInstruction: i18n.T(loc, i18n.KeyAISystemInstruction, nil),
		Prompt:            i18n.T(loc, i18n.KeyAIPrompt, map[string]any{"prompt": prompt}),
	}

	start := time.Now()
	text, err := g.backend.GenerateJSON(ctx, req)
	if err != nil {
		return design.Patch{}, g.fail(loc, fmt.Errorf("generate: %w", err))
	}

	patch, err := ParsePatch(text)
	if err != nil {
		return design.Patch{}, g.fail(loc, err)
	}

	patch = patch.ClampOpacity()
	if g.strictColors {
		patch = g.dropInvalidColors(patch)
	}

	g.log.Info("design generated",
		zap.String("locale", loc.String()),
		zap.Stringer("fields", patch),
		zap.Duration("took", time.Since(start)))
	return patch, nil
}

// ParsePatch decodes the service's JSON text into a patch. Surrounding
// whitespace and a markdown code fence are tolerated.
func ParsePatch(text string) (design.Patch, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return design.Patch{}, errors.New("parse response: empty body")
	}
	if !strings.HasPrefix(text, "{") {
		return design.Patch{}, errors.New("parse response: not a JSON object")
	}

	var patch design.Patch
	if err := json.Unmarshal([]byte(text), &patch); err != nil {
		return design.Patch{}, fmt.Errorf("parse response: %w", err)
	}
	return patch, nil
}

func (g *Generator) dropInvalidColors(p design.Patch) design.Patch {
	for _, field := range design.ColorFields {
		v, ok := p.Color(field)
		if !ok || color.Valid(v) {
			continue
		}
		g.log.Warn("dropping invalid color from generated design",
			zap.String("field", field),
			zap.String("value", v))
		p.Drop(field)
	}
	return p
}

func (g *Generator) fail(loc i18n.Locale, cause error) error {
	g.log.Error("design generation failed",
		zap.String("locale", loc.String()),
		zap.Error(cause))
	return &GenerationFailure{
		Locale:  loc,
		Message: i18n.T(loc, i18n.KeyGenerationFailed, nil),
		Cause:   cause,
	}
}
