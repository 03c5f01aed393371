package themebinding

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/patterns/internal/theme"
	"github.com/alexisbeaulieu97/patterns/internal/themestore"
)

// fakeStore mirrors the store contract: toggle notifies, set does not.
type fakeStore struct {
	mu       sync.Mutex
	current  theme.Theme
	subs     map[int]func(theme.Theme)
	order    []int
	nextID   int
	releases int
}

func newFakeStore() *fakeStore {
	return &fakeStore{current: theme.Light, subs: map[int]func(theme.Theme){}}
}

func (f *fakeStore) Theme() theme.Theme {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *fakeStore) SetTheme(t theme.Theme) error {
	if !t.Valid() {
		return theme.ErrInvalidTheme
	}
	f.mu.Lock()
	f.current = t
	f.mu.Unlock()
	return nil
}

func (f *fakeStore) ToggleTheme() {
	f.mu.Lock()
	f.current = f.current.Opposite()
	next := f.current
	var fns []func(theme.Theme)
	for _, id := range f.order {
		if fn, ok := f.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

func (f *fakeStore) Subscribe(fn func(theme.Theme)) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := f.nextID
	f.subs[id] = fn
	f.order = append(f.order, id)
	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, ok := f.subs[id]; ok {
			delete(f.subs, id)
			f.releases++
		}
	}
}

func (f *fakeStore) subscriberCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func TestMountReadsCurrentThemeAndSubscribes(t *testing.T) {
	store := newFakeStore()
	require.NoError(t, store.SetTheme(theme.Dark))

	b := New(store, nil)
	b.Mount()
	t.Cleanup(b.Unmount)

	assert.True(t, b.Mounted())
	assert.Equal(t, theme.Dark, b.Theme())
	assert.True(t, b.IsDarkMode())
	assert.Equal(t, 1, store.subscriberCount())
}

func TestToggleUpdatesObservedValueAndCallsConsumer(t *testing.T) {
	store := newFakeStore()
	var rendered []theme.Theme
	b := New(store, func(t theme.Theme) { rendered = append(rendered, t) })
	b.Mount()
	defer b.Unmount()

	b.ToggleTheme()
	assert.Equal(t, theme.Dark, b.Theme())
	store.ToggleTheme()
	assert.Equal(t, theme.Light, b.Theme())
	assert.False(t, b.IsDarkMode())

	assert.Equal(t, []theme.Theme{theme.Dark, theme.Light}, rendered)
}

func TestMountTwiceSubscribesOnce(t *testing.T) {
	store := newFakeStore()
	b := New(store, nil)
	b.Mount()
	b.Mount()
	defer b.Unmount()

	assert.Equal(t, 1, store.subscriberCount())
}

func TestUnmountReleasesExactlyOnce(t *testing.T) {
	store := newFakeStore()
	b := New(store, nil)
	b.Mount()

	b.Unmount()
	b.Unmount()

	assert.False(t, b.Mounted())
	assert.Equal(t, 0, store.subscriberCount())
	assert.Equal(t, 1, store.releases)

	store.ToggleTheme()
	assert.Equal(t, theme.Light, b.Theme(), "unmounted binding must not follow the store")
}

func TestRemountAfterUnmount(t *testing.T) {
	store := newFakeStore()
	b := New(store, nil)
	b.Mount()
	b.Unmount()

	store.ToggleTheme()
	b.Mount()
	defer b.Unmount()

	assert.Equal(t, theme.Dark, b.Theme())
	assert.Equal(t, 1, store.subscriberCount())
}

func TestSetThemeRefreshesOnlyTheCallingBinding(t *testing.T) {
	store := newFakeStore()

	var primaryRenders, observerRenders int
	primary := New(store, func(theme.Theme) { primaryRenders++ })
	observer := New(store, func(theme.Theme) { observerRenders++ })
	primary.Mount()
	observer.Mount()
	defer primary.Unmount()
	defer observer.Unmount()

	require.NoError(t, primary.SetTheme(theme.Dark))

	assert.Equal(t, theme.Dark, store.Theme())
	assert.Equal(t, theme.Dark, primary.Theme())
	assert.Equal(t, theme.Light, observer.Theme())
	assert.Equal(t, 1, primaryRenders)
	assert.Equal(t, 0, observerRenders)

	primary.ToggleTheme()
	assert.Equal(t, theme.Light, primary.Theme())
	assert.Equal(t, theme.Light, observer.Theme())
	assert.Equal(t, 1, observerRenders)
}

func TestSetThemePropagatesInvalidTheme(t *testing.T) {
	store := newFakeStore()
	b := New(store, nil)
	b.Mount()
	defer b.Unmount()

	err := b.SetTheme(theme.Theme("neon"))
	require.ErrorIs(t, err, theme.ErrInvalidTheme)
	assert.Equal(t, theme.Light, b.Theme())
}

func TestSetThemeWhileUnmountedOnlyTouchesStore(t *testing.T) {
	store := newFakeStore()
	calls := 0
	b := New(store, func(theme.Theme) { calls++ })

	require.NoError(t, b.SetTheme(theme.Dark))
	assert.Equal(t, theme.Dark, store.Theme())
	assert.Equal(t, theme.Light, b.Theme())
	assert.Zero(t, calls)
}

func TestConcurrentTogglesWhileMounted(t *testing.T) {
	store := newFakeStore()
	b := New(store, nil)
	b.Mount()
	defer b.Unmount()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				b.ToggleTheme()
				_ = b.IsDarkMode()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, store.Theme(), b.Theme())
}

func TestConvergesWithStoreUnderConcurrentToggles(t *testing.T) {
	store := themestore.Instance()
	require.NoError(t, store.SetTheme(theme.Light))
	t.Cleanup(func() { _ = store.SetTheme(theme.Light) })

	// widens the gap between a dark round and the light round after it
	slow := store.Subscribe(func(th theme.Theme) {
		if th.IsDark() {
			time.Sleep(50 * time.Microsecond)
		}
	})
	defer slow()

	var (
		mu       sync.Mutex
		last     theme.Theme
		active   atomic.Int32
		overlaps atomic.Int32
	)
	b := New(store, func(th theme.Theme) {
		if active.Add(1) > 1 {
			overlaps.Add(1)
		}
		mu.Lock()
		last = th
		mu.Unlock()
		active.Add(-1)
	})
	b.Mount()
	defer b.Unmount()

	const workers = 8
	const toggles = 5
	for round := 0; round < 20; round++ {
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < toggles; j++ {
					store.ToggleTheme()
				}
			}()
		}
		wg.Wait()

		require.Equal(t, theme.Light, store.Theme())
		require.Equal(t, store.Theme(), b.Theme(), "round %d", round)
		mu.Lock()
		require.Equal(t, store.Theme(), last, "round %d", round)
		mu.Unlock()
	}
	assert.Zero(t, overlaps.Load())
}

func TestToggleFromConsumerIsDeliveredAfterCurrentCall(t *testing.T) {
	store := newFakeStore()

	var (
		b     *Binding
		calls []theme.Theme
	)
	b = New(store, func(th theme.Theme) {
		calls = append(calls, th)
		if len(calls) == 1 {
			b.ToggleTheme()
		}
	})
	b.Mount()
	defer b.Unmount()

	b.ToggleTheme()

	assert.Equal(t, []theme.Theme{theme.Dark, theme.Light}, calls)
	assert.Equal(t, theme.Light, b.Theme())
	assert.Equal(t, theme.Light, store.Theme())
}
