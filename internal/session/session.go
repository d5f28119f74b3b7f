// Package session owns the single live design: it applies manual and
// generated patches, recomposes the scene on every change and notifies
// observers.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/courtdesigner/internal/aidesign"
	"github.com/Faultbox/courtdesigner/internal/design"
	"github.com/Faultbox/courtdesigner/internal/i18n"
	"github.com/Faultbox/courtdesigner/internal/logger"
	"github.com/Faultbox/courtdesigner/internal/scene"
)

var (
	// ErrBusy is returned when a generation request is already in flight.
	ErrBusy = errors.New("session: a design request is already in flight")

	// ErrStale is returned when a generation result was superseded before it
	// arrived. The result is discarded.
	ErrStale = errors.New("session: design request superseded")

	// ErrAIUnavailable is returned by Generate when no generator is configured.
	ErrAIUnavailable = fmt.Errorf("session: AI design unavailable: %w", aidesign.ErrMissingAPIKey)
)

// Designer produces a partial design from a prompt.
type Designer interface {
	Generate(ctx context.Context, prompt string, loc i18n.Locale) (design.Patch, error)
}

// Snapshot is the state published to observers. Seq increases by one with
// every published snapshot.
type Snapshot struct {
	Seq    uint64        `json:"seq"`
	Design design.Design `json:"design"`
	Locale i18n.Locale   `json:"locale"`
	Scene  *scene.Node   `json:"scene"`
}

// Options configures a Session.
type Options struct {
	// Designer is optional; without it Generate returns ErrAIUnavailable.
	Designer Designer
	// Store persists the language preference. Defaults to an in-memory store.
	Store  i18n.Store
	Logger *zap.Logger
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Session is safe for concurrent use.
type Session struct {
	id       string
	designer Designer
	store    i18n.Store
	log      *zap.Logger

	mu       sync.Mutex
	design   design.Design
	locale   i18n.Locale
	scene    *scene.Node
	snapSeq  uint64
	reqSeq   uint64
	inFlight bool
	subs     []subscriber
	nextSub  int

	// notifyMu serializes observer calls so they see snapshots in order.
	notifyMu sync.Mutex
	// localeMu keeps the stored and the active locale in step.
	localeMu sync.Mutex
}

// New creates a session with the default design and the persisted locale.
func New(opts Options) *Session {
	s := &Session{
		id:       uuid.NewString(),
		designer: opts.Designer,
		store:    opts.Store,
		log:      opts.Logger,
		design:   design.Default(),
	}
	if s.store == nil {
		s.store = i18n.NewMemoryStore(i18n.Default)
	}
	if s.log == nil {
		s.log = logger.Named("session")
	}
	s.log = s.log.With(zap.String("session", s.id))

	loc, err := s.store.Load()
	if err != nil {
		s.log.Warn("failed to load language preference, using default",
			zap.String("default", i18n.Default.String()),
			zap.Error(err))
		loc = i18n.Default
	}
	s.locale = loc
	s.scene = scene.Compose(s.design, s.locale)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Design returns the current design.
func (s *Session) Design() design.Design {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.design
}

// Locale returns the current display language.
func (s *Session) Locale() i18n.Locale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// Scene returns the scene composed for the current design and locale.
// Callers must not modify it.
func (s *Session) Scene() *scene.Node {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Busy reports whether a generation request is in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// AIEnabled reports whether Generate can reach a designer.
func (s *Session) AIEnabled() bool {
	return s.designer != nil
}

// Update applies a manual patch. glassOpacity is clamped the way the
// opacity slider bounds it.
func (s *Session) Update(patch design.Patch) design.Design {
	s.mu.Lock()
	s.design = design.Apply(s.design, patch.ClampOpacity())
	s.log.Debug("design updated", zap.Stringer("fields", patch))
	return s.publishLocked()
}

// Reset restores the default design. An in-flight generation request is
// superseded and its result will be discarded.
func (s *Session) Reset() design.Design {
	s.mu.Lock()
	s.design = design.Default()
	if s.inFlight {
		s.reqSeq++
		s.inFlight = false
	}
	s.log.Info("design reset")
	return s.publishLocked()
}

// SetLocale persists and switches the display language. Only label text
// changes; the design is untouched.
func (s *Session) SetLocale(loc i18n.Locale) error {
	if !loc.Valid() {
		return fmt.Errorf("unsupported locale %q", loc)
	}
	s.localeMu.Lock()
	defer s.localeMu.Unlock()

	if err := s.store.Save(loc); err != nil {
		return fmt.Errorf("save language preference: %w", err)
	}

	s.mu.Lock()
	if s.locale == loc {
		s.mu.Unlock()
		return nil
	}
	s.locale = loc
	s.log.Info("locale changed", zap.String("locale", loc.String()))
	s.publishLocked()
	return nil
}

// Generate asks the designer for a patch and applies it. Only one request
// may be in flight; each request carries a sequence number and its result
// is applied only if no newer request or reset happened meanwhile. On any
// error the design is left unchanged.
func (s *Session) Generate(ctx context.Context, prompt string) (design.Design, error) {
	if s.designer == nil {
		return design.Design{}, ErrAIUnavailable
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return design.Design{}, ErrBusy
	}
	s.inFlight = true
	s.reqSeq++
	seq := s.reqSeq
	loc := s.locale
	s.mu.Unlock()

	log := s.log.With(zap.Uint64("request", seq))
	log.Info("design request started", zap.String("locale", loc.String()))

	patch, err := s.designer.Generate(ctx, prompt, loc)

	s.mu.Lock()
	if seq != s.reqSeq {
		s.mu.Unlock()
		log.Info("discarding superseded design response")
		return design.Design{}, ErrStale
	}
	s.inFlight = false
	if err != nil {
		s.mu.Unlock()
		return design.Design{}, err
	}
	s.design = design.Apply(s.design, patch)
	log.Info("generated design applied", zap.Stringer("fields", patch))
	return s.publishLocked(), nil
}

// Subscribe registers fn for every published snapshot. Calls happen in
// publish order, outside the session lock; fn may read the session but must
// not modify it. The returned function removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		Seq:    s.snapSeq,
		Design: s.design,
		Locale: s.locale,
		Scene:  s.scene,
	}
}

// publishLocked recomposes the scene, releases s.mu and notifies
// subscribers. It must be called with s.mu held.
func (s *Session) publishLocked() design.Design {
	s.scene = scene.Compose(s.design, s.locale)
	s.snapSeq++
	snap := s.snapshotLocked()
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
	return snap.Design
}
