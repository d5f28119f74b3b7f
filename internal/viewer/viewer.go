// Package viewer runs the interactive OpenGL preview of a design session.
package viewer

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/courtdesigner/internal/config"
	"github.com/Faultbox/courtdesigner/internal/engine/camera"
	"github.com/Faultbox/courtdesigner/internal/engine/capture"
	"github.com/Faultbox/courtdesigner/internal/engine/input"
	"github.com/Faultbox/courtdesigner/internal/engine/model"
	"github.com/Faultbox/courtdesigner/internal/engine/renderer"
	"github.com/Faultbox/courtdesigner/internal/engine/window"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/logger"
	"github.com/Faultbox/courtdesigner/internal/session"
)

// Viewer owns the window and the render loop. It must run on the main
// thread.
type Viewer struct {
	running  bool
	session  *session.Session
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	controls *Controls
	capture  *capture.Capture
	log      *zap.Logger

	// pending receives snapshots from other goroutines; the loop picks the
	// latest one up on the main thread.
	pending     atomic.Pointer[session.Snapshot]
	unsubscribe func()
}

// New creates the window and renderer for sess.
func New(cfg config.ViewerConfig, sess *session.Session) (*Viewer, error) {
	log := logger.Named("viewer")
	snap := sess.Snapshot()

	v := &Viewer{
		session: sess,
		camera:  camera.NewOrbitCamera(),
		input:   input.New(),
		capture: capture.New(cfg.ScreenshotDir, "court"),
		log:     log,
	}
	v.controls = NewControls(v.camera, sess)

	title := i18n.T(snap.Locale, i18n.KeyAppTitle, nil)
	log.Info("initializing viewer",
		zap.String("title", title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	var err error
	v.window, err = window.New(window.FromViewer(title, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer comes AFTER window, since OpenGL context must exist
	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.DefaultConfig(w, h))
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.pending.Store(&snap)
	v.unsubscribe = sess.Subscribe(func(s session.Snapshot) {
		v.pending.Store(&s)
	})

	log.Info("viewer initialized")
	return v, nil
}

// Run starts the render loop and returns when the window closes.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting render loop")

	for v.running {
		if v.input.Update() {
			v.running = false
			break
		}

		screenshot := false
		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				v.renderer.Resize(v.window.DrawableSize())
			}
			switch v.controls.Handle(event, v.input) {
			case ActionQuit:
				v.running = false
			case ActionScreenshot:
				screenshot = true
			}
		}

		v.applyPending()

		w, h := v.renderer.Size()
		v.renderer.Draw(v.camera.ViewMatrix(), v.camera.ProjectionMatrix(w, h), v.camera.Position())
		// Read back before the swap, the back buffer is undefined afterwards.
		if screenshot {
			v.saveScreenshot()
		}
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close releases the subscription, renderer and window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.unsubscribe != nil {
		v.unsubscribe()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) saveScreenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.capture.SavePixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) applyPending() {
	snap := v.pending.Swap(nil)
	if snap == nil {
		return
	}
	v.renderer.SetBatch(model.Build(snap.Scene))
	v.window.SetTitle(Title(*snap))
	v.log.Debug("scene refreshed", zap.Uint64("seq", snap.Seq))
}

// Title is the window caption for a snapshot.
func Title(s session.Snapshot) string {
	return fmt.Sprintf("%s | %s %d%%",
		i18n.T(s.Locale, i18n.KeyAppTitle, nil),
		s.Design.CourtColor,
		s.Design.OpacityPercent())
}
