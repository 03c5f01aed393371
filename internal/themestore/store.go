package themestore

import (
	"container/list"
	"context"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/patterns/internal/logger"
	"github.com/alexisbeaulieu97/patterns/internal/ports"
	"github.com/alexisbeaulieu97/patterns/internal/theme"
)

// Callback receives the theme a toggle transitioned to.
type Callback = func(theme.Theme)

// Option configures the store when it is first constructed.
type Option func(*Store)

// WithLogger sets the logger used for store activity and subscriber failures.
func WithLogger(l ports.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l.With("component", "themestore")
		}
	}
}

// WithInitialTheme overrides the light default. Invalid themes are ignored.
func WithInitialTheme(t theme.Theme) Option {
	return func(s *Store) {
		if t.Valid() {
			s.current = t
		}
	}
}

// Store owns the current theme and the ordered set of subscribers.
type Store struct {
	mu      sync.RWMutex
	current theme.Theme
	subs    *list.List
	index   map[uint64]*list.Element
	nextID  uint64
	logger  ports.Logger
}

type subscriber struct {
	id uint64
	fn Callback
}

var (
	instanceOnce sync.Once
	instance     *Store
)

// Instance returns the shared store, constructing it on the first call.
// Options only take effect on that first call; later calls return the
// existing instance unchanged. The store is published before options run,
// so an option may itself call Instance and gets the same pointer. Options
// must not call Store methods, which wait until construction finishes.
func Instance(opts ...Option) *Store {
	created := false
	instanceOnce.Do(func() {
		s := blankStore()
		s.mu.Lock()
		instance = s
		created = true
	})

	if created {
		defer instance.mu.Unlock()
		instance.configure(opts)
		return instance
	}

	if len(opts) > 0 {
		instance.mu.RLock()
		l := instance.logger
		instance.mu.RUnlock()
		l.Debug(context.Background(), "store already constructed, options ignored", "options", len(opts))
	}
	return instance
}

func newStore(opts ...Option) *Store {
	s := blankStore()
	s.configure(opts)
	return s
}

func blankStore() *Store {
	return &Store{
		current: theme.Light,
		subs:    list.New(),
		index:   make(map[uint64]*list.Element),
		logger:  logger.NewNoOp(),
	}
}

// configure applies opts. Instance calls it with s.mu held.
func (s *Store) configure(opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	s.logger.Info(context.Background(), "theme store created", "theme", s.current.String())
}

// Theme returns the current theme.
func (s *Store) Theme() theme.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetTheme assigns t without notifying subscribers.
func (s *Store) SetTheme(t theme.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("set theme: %w: %q", theme.ErrInvalidTheme, string(t))
	}

	s.mu.Lock()
	previous := s.current
	s.current = t
	s.mu.Unlock()

	s.logger.Debug(context.Background(), "theme set", "from", previous.String(), "to", t.String())
	return nil
}

// ToggleTheme flips the theme and notifies every subscriber with the new
// value, in registration order. Callbacks run outside the store lock.
func (s *Store) ToggleTheme() {
	s.mu.Lock()
	s.current = s.current.Opposite()
	next := s.current
	targets := make([]subscriber, 0, s.subs.Len())
	for e := s.subs.Front(); e != nil; e = e.Next() {
		targets = append(targets, *e.Value.(*subscriber))
	}
	s.mu.Unlock()

	s.logger.Debug(context.Background(), "theme toggled", "theme", next.String(), "subscribers", len(targets))

	for _, sub := range targets {
		s.deliver(sub, next)
	}
}

// Subscribe registers fn and returns a func that removes exactly this
// registration. Each call creates a distinct registration, even for the same
// function. The returned func is safe to call more than once.
func (s *Store) Subscribe(fn Callback) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.index[id] = s.subs.PushBack(&subscriber{id: id, fn: fn})
	s.mu.Unlock()

	s.logger.Debug(context.Background(), "subscriber added", "subscription_id", id)

	return func() {
		s.release(id)
	}
}

func (s *Store) release(id uint64) {
	s.mu.Lock()
	e, ok := s.index[id]
	if ok {
		s.subs.Remove(e)
		delete(s.index, id)
	}
	s.mu.Unlock()

	if ok {
		s.logger.Debug(context.Background(), "subscriber removed", "subscription_id", id)
	}
}

func (s *Store) deliver(sub subscriber, t theme.Theme) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(context.Background(), "theme subscriber panicked",
				"subscription_id", sub.id,
				"theme", t.String(),
				"panic", fmt.Sprint(r),
			)
		}
	}()
	sub.fn(t)
}

func (s *Store) subscriberCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.subs.Len()
}

var _ ports.ThemeStore = (*Store)(nil)
