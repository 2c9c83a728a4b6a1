package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"archsdinos/internal/domain"
	"archsdinos/internal/ports"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return map[string]interface{}{}
}

type delivered struct {
	Kind    string
	Payload any
}

// recorder is a PlayerCallback that keeps every delivered event.
type recorder struct {
	mu     sync.Mutex
	events []delivered
	err    error
	panics bool
}

func (r *recorder) Deliver(_ context.Context, kind string, payload any) error {
	if r.panics {
		panic("connection exploded")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, delivered{Kind: kind, Payload: payload})
	return r.err
}

func (r *recorder) count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, ev := range r.events {
		if ev.Kind == string(kind) {
			n++
		}
	}
	return n
}

func (r *recorder) last(kind EventKind) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Kind == string(kind) {
			return r.events[i].Payload, true
		}
	}
	return nil, false
}

// fakeStats records matches and fails with err when set.
type fakeStats struct {
	mu      sync.Mutex
	records []ports.MatchRecord
	err     error
}

func (f *fakeStats) RecordMatch(_ context.Context, rec ports.MatchRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, rec)
	return f.err
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	svc   *GameActionService
	clock *fakeClock
	stats *fakeStats
	cbs   map[string]*recorder
	s     *domain.GameSession
}

const testMatch = "m1"

// newFixture starts a match for ids and replaces the random deal with a
// fixed one: empty hands, empty board and three piles of sand heads.
func newFixture(t *testing.T, ids ...string) *fixture {
	t.Helper()
	f := &fixture{
		clock: &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		stats: &fakeStats{},
		cbs:   make(map[string]*recorder),
	}
	f.svc = NewGameActionService(NewGameSessionManager(), Options{
		Logger:     noopLogger{},
		Statistics: f.stats,
		Seed:       1,
		Now:        f.clock.Now,
	})

	seats := make([]Seat, len(ids))
	for i, id := range ids {
		f.cbs[id] = &recorder{}
		seats[i] = Seat{UserID: id, Username: "name-" + id, Callback: f.cbs[id]}
	}
	s, err := f.svc.StartGame(context.Background(), testMatch, seats)
	if err != nil {
		t.Fatalf("start game: %v", err)
	}
	f.s = s

	for _, p := range s.Players {
		p.Hand = nil
	}
	s.Board = domain.NewCentralBoard()
	s.Discard = nil
	for i := range s.DrawPiles {
		s.DrawPiles[i] = cards(t, 102, 103, 104)
	}
	return f
}

func card(t *testing.T, id int) domain.Card {
	t.Helper()
	c, ok := domain.LookupCard(id)
	if !ok {
		t.Fatalf("card %d not in catalog", id)
	}
	return c
}

func cards(t *testing.T, ids ...int) []domain.Card {
	t.Helper()
	out := make([]domain.Card, len(ids))
	for i, id := range ids {
		out[i] = card(t, id)
	}
	return out
}

func (f *fixture) player(t *testing.T, id string) *domain.Player {
	t.Helper()
	p, ok := f.s.Player(id)
	if !ok {
		t.Fatalf("player %s not seated", id)
	}
	return p
}

func expectCode(t *testing.T, set CodeSet, got, want Code) {
	t.Helper()
	if got != want {
		t.Fatalf("code = %s, want %s", got, want)
	}
	if !set.Contains(got) {
		t.Fatalf("code %s outside the action's allowed set", got)
	}
}
