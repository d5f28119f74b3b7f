package viewer

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/engine/camera"
	"github.com/Faultbox/courtdesigner/internal/engine/input"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/logger"
)

// Action is what an event asked the loop to do.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionCamera
	ActionSession
	ActionScreenshot
)

// SessionControl is the part of the session the keyboard can drive.
type SessionControl interface {
	Locale() i18n.Locale
	SetLocale(i18n.Locale) error
	Reset() design.Design
}

// Controls maps input to camera moves and session commands.
//
//	left drag   orbit
//	right drag  pan
//	wheel       zoom
//	C           reset camera
//	R           reset design
//	L           toggle language
//	P           save a screenshot
//	Escape      quit
type Controls struct {
	camera  *camera.OrbitCamera
	session SessionControl
	log     *zap.Logger
}

// NewControls binds the controls to cam and sess.
func NewControls(cam *camera.OrbitCamera, sess SessionControl) *Controls {
	return &Controls{camera: cam, session: sess, log: logger.Named("controls")}
}

// ButtonState reports held mouse buttons.
type ButtonState interface {
	IsButtonDown(button uint8) bool
}

// Handle applies one event.
func (c *Controls) Handle(e input.Event, buttons ButtonState) Action {
	switch e.Type {
	case input.EventQuit:
		return ActionQuit

	case input.EventMouseMove:
		switch {
		case buttons.IsButtonDown(sdl.BUTTON_LEFT):
			c.camera.HandleDrag(e.DeltaX, e.DeltaY)
			return ActionCamera
		case buttons.IsButtonDown(sdl.BUTTON_RIGHT):
			c.camera.HandlePan(e.DeltaX, e.DeltaY)
			return ActionCamera
		}

	case input.EventMouseWheel:
		c.camera.HandleZoom(e.DeltaY)
		return ActionCamera

	case input.EventKeyDown:
		switch e.Key {
		case sdl.SCANCODE_ESCAPE:
			return ActionQuit
		case sdl.SCANCODE_C:
			c.camera.Reset()
			return ActionCamera
		case sdl.SCANCODE_R:
			c.session.Reset()
			return ActionSession
		case sdl.SCANCODE_P:
			return ActionScreenshot
		case sdl.SCANCODE_L:
			next := i18n.English
			if c.session.Locale() == i18n.English {
				next = i18n.Indonesian
			}
			if err := c.session.SetLocale(next); err != nil {
				c.log.Warn("failed to switch language", zap.Error(err))
				return ActionNone
			}
			return ActionSession
		}
	}
	return ActionNone
}
