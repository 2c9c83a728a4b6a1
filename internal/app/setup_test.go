package app

import (
	"errors"
	"math/rand"
	"testing"

	"archsdinos/internal/domain"
)

func TestNewSessionDeals(t *testing.T) {
	seats := []Seat{{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3"}}
	s, err := NewSession("m", seats, DefaultRules(), rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	total := 0
	for _, p := range s.Players {
		if len(p.Hand) != DefaultHandSize {
			t.Fatalf("%s hand = %d cards", p.UserID, len(p.Hand))
		}
		for _, c := range p.Hand {
			if c.IsArch() {
				t.Fatalf("%s was dealt arch %s", p.UserID, c)
			}
		}
		total += len(p.Hand)
	}
	for _, army := range domain.ArmyTypes {
		if s.Board.Count(army) != 1 {
			t.Fatalf("board %s has %d archs", army, s.Board.Count(army))
		}
		total++
	}
	sizes := s.PileSizes()
	for _, n := range sizes {
		total += n
	}
	if total != len(domain.NewDeck()) {
		t.Fatalf("cards in play = %d, want the full deck", total)
	}
	if sizes[0]-sizes[2] > 1 {
		t.Fatalf("piles unbalanced: %v", sizes)
	}
	if s.Phase != domain.PhaseNotStarted {
		t.Fatalf("phase = %s", s.Phase)
	}
}

func TestNewSessionRejectsSeats(t *testing.T) {
	tests := []struct {
		name  string
		seats []Seat
		rules Rules
		want  error
	}{
		{"too few", []Seat{{UserID: "u1"}}, Rules{}, ErrTooFewPlayers},
		{"too many", []Seat{{UserID: "a"}, {UserID: "b"}, {UserID: "c"}, {UserID: "d"}, {UserID: "e"}}, Rules{}, ErrTooManyPlayers},
		{"duplicate", []Seat{{UserID: "a"}, {UserID: "a"}}, Rules{}, ErrDuplicateSeat},
		{"empty id", []Seat{{UserID: "a"}, {}}, Rules{}, ErrDuplicateSeat},
		{"huge hands", []Seat{{UserID: "a"}, {UserID: "b"}}, Rules{HandSize: 40}, ErrHandTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSession("m", tt.seats, tt.rules, nil); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRulesDefaults(t *testing.T) {
	r := Rules{MovesPerTurn: 5}.withDefaults()
	if r.MovesPerTurn != 5 || r.MaxCardsPerTurn != domain.DefaultMaxCardsPerTurn || r.MatchDuration != domain.DefaultMatchDuration {
		t.Fatalf("rules = %+v", r)
	}
}
