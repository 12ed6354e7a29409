package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/hanssen-studio/portfolio/internal/theme"
	"github.com/hanssen-studio/portfolio/internal/view"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testDefaults = Defaults{Slides: []string{"a", "b", "c"}, SlideStart: 1}

func newTestStore(t *testing.T, idle time.Duration) *Store {
	t.Helper()
	st, err := NewStore(testDefaults, idle)
	require.NoError(t, err)
	return st
}

func TestNewStoreRejectsNoSlides(t *testing.T) {
	_, err := NewStore(Defaults{}, time.Minute)
	assert.Error(t, err)
}

func TestCreateStartsAtDefaults(t *testing.T) {
	st := newTestStore(t, 0)
	s := st.Create()

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, view.Home, s.Router.Current())
	assert.False(t, s.Theme.IsDark())
	assert.Equal(t, "", s.Root.String())
	assert.Equal(t, 1, s.Hero.Index())

	got, ok := st.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)
}

func TestDarkDefault(t *testing.T) {
	st, err := NewStore(Defaults{Theme: theme.Dark, Slides: []string{"x"}}, 0)
	require.NoError(t, err)
	s := st.Create()
	assert.True(t, s.Root.Contains(theme.DarkClass))
}

func TestSessionsAreIsolated(t *testing.T) {
	st := newTestStore(t, 0)
	a, b := st.Create(), st.Create()

	require.NoError(t, a.Do(func(s *State) error {
		s.Theme.Toggle()
		return s.Router.Navigate(view.Work)
	}))

	assert.True(t, a.Theme.IsDark())
	assert.False(t, b.Theme.IsDark())
	assert.Equal(t, view.Home, b.Router.Current())
}

func TestExpiry(t *testing.T) {
	st := newTestStore(t, time.Minute)
	now := time.Date(2024, 6, 24, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	s := st.Create()
	now = now.Add(30 * time.Second)
	_, ok := st.Get(s.ID)
	require.True(t, ok, "touch within idle window")

	now = now.Add(2 * time.Minute)
	_, ok = st.Get(s.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestSweep(t *testing.T) {
	st := newTestStore(t, time.Minute)
	now := time.Date(2024, 6, 24, 12, 0, 0, 0, time.UTC)
	st.now = func() time.Time { return now }

	st.Create()
	st.Create()
	now = now.Add(45 * time.Second)
	fresh := st.Create()
	now = now.Add(30 * time.Second)

	assert.Equal(t, 2, st.Sweep())
	assert.Equal(t, 1, st.Len())
	_, ok := st.Get(fresh.ID)
	assert.True(t, ok)
}

func TestSweepDisabled(t *testing.T) {
	st := newTestStore(t, 0)
	st.Create()
	assert.Equal(t, 0, st.Sweep())
	assert.Equal(t, 1, st.Len())
}

func TestRunStopsOnCancel(t *testing.T) {
	st := newTestStore(t, time.Millisecond)
	st.Create()
	ctx, cancel := context.WithCancel(context.Background())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		st.Run(ctx, time.Millisecond, zap.NewNop())
	}()

	require.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	wg.Wait()
}

func TestFromRequest(t *testing.T) {
	st := newTestStore(t, 0)

	w := httptest.NewRecorder()
	s, created := st.FromRequest(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.True(t, created)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, s.ID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Zero(t, cookies[0].MaxAge)

	r := httptest.NewRequest(http.MethodGet, "/work", nil)
	r.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	again, created := st.FromRequest(w, r)
	assert.False(t, created)
	assert.Same(t, s, again)
	assert.Empty(t, w.Result().Cookies())

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
	w = httptest.NewRecorder()
	fresh, created := st.FromRequest(w, r)
	assert.True(t, created)
	assert.NotEqual(t, "stale", fresh.ID)
}

func TestTakeNotice(t *testing.T) {
	st := newTestStore(t, 0)
	s := st.Create()
	_ = s.Do(func(s *State) error {
		s.Notice = "hello"
		assert.Equal(t, "hello", s.TakeNotice())
		assert.Equal(t, "", s.TakeNotice())
		return nil
	})
}
