package aidesign

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"github.com/Faultbox/courtdesigner/internal/design"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Gemini is a Backend backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini backend. An empty apiKey yields ErrMissingAPIKey.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Model returns the model name requests are sent to.
func (g *Gemini) Model() string {
	return g.model
}

// GenerateJSON sends one single-turn request constrained to ResponseSchema.
func (g *Gemini) GenerateJSON(ctx context.Context, req Request) (string, error) {
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    ResponseSchema(),
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini %s: %w", g.model, err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini returned no text")
	}
	return text, nil
}

// ResponseSchema describes the design object the model must return.
func ResponseSchema() *genai.Schema {
	hex := func(what, example string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeString,
			Description: fmt.Sprintf("A hex color code for %s, e.g., '%s'.", what, example),
		}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			design.FieldCourtColor:     hex("the main playing surface", "#005A9C"),
			design.FieldLinesColor:     hex("the court lines", "#FFFFFF"),
			design.FieldOutOfPlayColor: hex("the area outside the court lines", "#003D6B"),
			design.FieldFrameColor:     hex("the metal structure", "#333333"),
			design.FieldGlassOpacity: {
				Type: genai.TypeNumber,
				Description: fmt.Sprintf("A number between %g and %g for the glass wall opacity.",
					design.MinGlassOpacity, design.MaxGlassOpacity),
			},
			design.FieldNetColor:  hex("the net", "#111111"),
			design.FieldLogoColor: hex("the logo on the net", "#FFFFFF"),
		},
		PropertyOrdering: []string{
			design.FieldCourtColor,
			design.FieldLinesColor,
			design.FieldOutOfPlayColor,
			design.FieldFrameColor,
			design.FieldGlassOpacity,
			design.FieldNetColor,
			design.FieldLogoColor,
		},
	}
}
