package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/Faultbox/courtdesigner/internal/aidesign"
	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/session"
)

// Handler serves the design API.
type Handler struct {
	session *session.Session
}

type designResponse struct {
	Design         design.Design `json:"design"`
	OpacityPercent int           `json:"opacityPercent"`
	Busy           bool          `json:"busy"`
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

type localeRequest struct {
	Language string `json:"language"`
}

type localeResponse struct {
	Language  i18n.Locale   `json:"language"`
	Supported []i18n.Locale `json:"supported"`
}

type messagesResponse struct {
	Language i18n.Locale       `json:"language"`
	Messages map[string]string `json:"messages"`
}

// Live reports that the process is up.
func (h *Handler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// Ready reports readiness and whether AI generation is configured.
func (h *Handler) Ready(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ready",
		"aiEnabled": h.session.AIEnabled(),
	})
}

// GetDesign returns the current design.
func (h *Handler) GetDesign(c fiber.Ctx) error {
	return c.JSON(h.designResponse(h.session.Design()))
}

// PatchDesign applies a manual patch.
func (h *Handler) PatchDesign(c fiber.Ctx) error {
	var patch design.Patch
	if err := decodeStrict(c.Body(), &patch); err != nil {
		return badRequest(c, err.Error())
	}
	if patch.IsEmpty() {
		return badRequest(c, "patch has no fields")
	}
	return c.JSON(h.designResponse(h.session.Update(patch)))
}

// ResetDesign restores the default design.
func (h *Handler) ResetDesign(c fiber.Ctx) error {
	return c.JSON(h.designResponse(h.session.Reset()))
}

// GenerateDesign runs an AI design request and returns the resulting design.
func (h *Handler) GenerateDesign(c fiber.Ctx) error {
	var req generateRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return badRequest(c, err.Error())
	}

	d, err := h.session.Generate(c.Context(), req.Prompt)
	if err != nil {
		return h.generationError(c, err)
	}
	return c.JSON(h.designResponse(d))
}

// GetScene returns the composed scene with the state it was built from.
func (h *Handler) GetScene(c fiber.Ctx) error {
	return c.JSON(h.session.Snapshot())
}

// GetLocale returns the current language.
func (h *Handler) GetLocale(c fiber.Ctx) error {
	return c.JSON(localeResponse{Language: h.session.Locale(), Supported: i18n.Supported})
}

// PutLocale switches and persists the language.
func (h *Handler) PutLocale(c fiber.Ctx) error {
	var req localeRequest
	if err := decodeStrict(c.Body(), &req); err != nil {
		return badRequest(c, err.Error())
	}
	loc, ok := i18n.Parse(req.Language)
	if !ok {
		return badRequest(c, "unsupported language "+req.Language)
	}
	if err := h.session.SetLocale(loc); err != nil {
		return err
	}
	return c.JSON(localeResponse{Language: loc, Supported: i18n.Supported})
}

// GetMessages returns the UI copy. The language is taken from ?lang=, then
// Accept-Language, then the session.
func (h *Handler) GetMessages(c fiber.Ctx) error {
	loc := h.session.Locale()
	if q := c.Query("lang"); q != "" {
		parsed, ok := i18n.Parse(q)
		if !ok {
			return badRequest(c, "unsupported language "+q)
		}
		loc = parsed
	} else if al := c.Get(fiber.HeaderAcceptLanguage); al != "" {
		loc = i18n.Match(al)
	}

	msgs := i18n.Messages(loc)
	delete(msgs, i18n.KeyAISystemInstruction)
	delete(msgs, i18n.KeyAIPrompt)
	msgs[i18n.KeyGlassOpacityPercent] = i18n.T(loc, i18n.KeyGlassOpacityPercent,
		map[string]any{"percent": h.session.Design().OpacityPercent()})

	return c.JSON(messagesResponse{Language: loc, Messages: msgs})
}

func (h *Handler) designResponse(d design.Design) designResponse {
	return designResponse{
		Design:         d,
		OpacityPercent: d.OpacityPercent(),
		Busy:           h.session.Busy(),
	}
}

// generationError maps generation errors to statuses. The body carries a
// message in the session language.
func (h *Handler) generationError(c fiber.Ctx, err error) error {
	loc := h.session.Locale()

	var failure *aidesign.GenerationFailure
	switch {
	case errors.As(err, &failure):
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"error": failure.Message})
	case errors.Is(err, session.ErrAIUnavailable):
		return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"error": i18n.T(loc, i18n.KeyAIUnavailable, nil)})
	case errors.Is(err, session.ErrBusy):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": i18n.T(loc, i18n.KeyGenerationBusy, nil)})
	case errors.Is(err, session.ErrStale):
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": i18n.T(loc, i18n.KeyGenerationStale, nil)})
	}
	return err
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func decodeStrict(body []byte, v any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json: " + err.Error())
	}
	return nil
}
