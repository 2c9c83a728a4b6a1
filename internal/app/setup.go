package app

import (
	"errors"
	"math/rand"
	"time"

	"archsdinos/internal/domain"
	"archsdinos/internal/ports"
)

var (
	ErrTooFewPlayers  = errors.New("not enough players to start")
	ErrTooManyPlayers = errors.New("too many players for one table")
	ErrDuplicateSeat  = errors.New("user seated twice")
	ErrHandTooLarge   = errors.New("hand size exceeds the deck")
)

// Rules are the tunable limits of a match.
type Rules struct {
	MovesPerTurn    int
	MaxCardsPerTurn int
	HandSize        int
	MinPlayers      int
	MaxPlayers      int
	MatchDuration   time.Duration
}

// DefaultRules returns the standard table rules.
func DefaultRules() Rules {
	return Rules{
		MovesPerTurn:    domain.DefaultMovesPerTurn,
		MaxCardsPerTurn: domain.DefaultMaxCardsPerTurn,
		HandSize:        DefaultHandSize,
		MinPlayers:      MinPlayersToStartGame,
		MaxPlayers:      MaxPlayersPerMatch,
		MatchDuration:   domain.DefaultMatchDuration,
	}
}

// withDefaults fills unset fields from DefaultRules.
func (r Rules) withDefaults() Rules {
	d := DefaultRules()
	if r.MovesPerTurn <= 0 {
		r.MovesPerTurn = d.MovesPerTurn
	}
	if r.MaxCardsPerTurn <= 0 {
		r.MaxCardsPerTurn = d.MaxCardsPerTurn
	}
	if r.HandSize <= 0 {
		r.HandSize = d.HandSize
	}
	if r.MinPlayers <= 0 {
		r.MinPlayers = d.MinPlayers
	}
	if r.MaxPlayers <= 0 {
		r.MaxPlayers = d.MaxPlayers
	}
	if r.MatchDuration <= 0 {
		r.MatchDuration = d.MatchDuration
	}
	return r
}

// Seat describes one participant at game creation.
type Seat struct {
	UserID   string
	Username string
	IsBot    bool
	Callback ports.PlayerCallback
}

// NewSession builds an unstarted session and deals it: every player gets a
// hand without archs, the board starts with one arch per army and the rest
// of the deck is dealt round-robin into the draw piles.
func NewSession(matchID string, seats []Seat, rules Rules, rng *rand.Rand) (*domain.GameSession, error) {
	rules = rules.withDefaults()
	if len(seats) < rules.MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if len(seats) > rules.MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	players := make([]*domain.Player, 0, len(seats))
	seen := make(map[string]bool, len(seats))
	for i, seat := range seats {
		if seat.UserID == "" || seen[seat.UserID] {
			return nil, ErrDuplicateSeat
		}
		seen[seat.UserID] = true
		p := domain.NewPlayer(seat.UserID, seat.Username, i, seat.Callback)
		p.IsBot = seat.IsBot
		players = append(players, p)
	}

	s := domain.NewGameSession(matchID, players)
	s.MovesPerTurn = rules.MovesPerTurn
	s.MaxCardsPerTurn = rules.MaxCardsPerTurn
	s.MatchDuration = rules.MatchDuration

	deck := domain.ShuffleDeck(domain.NewDeck(), rng)
	var archs, rest []domain.Card
	for _, c := range deck {
		if c.IsArch() {
			archs = append(archs, c)
		} else {
			rest = append(rest, c)
		}
	}

	if rules.HandSize*len(players) > len(rest) {
		return nil, ErrHandTooLarge
	}
	for _, p := range players {
		p.Hand = append([]domain.Card(nil), rest[:rules.HandSize]...)
		rest = rest[rules.HandSize:]
	}

	seeded := make(map[domain.ArmyType]bool, len(domain.ArmyTypes))
	for _, c := range archs {
		if !seeded[c.Army] {
			seeded[c.Army] = true
			s.Board.AddArch(c)
			continue
		}
		rest = append(rest, c)
	}

	for i, c := range domain.ShuffleDeck(rest, rng) {
		pile := i % len(s.DrawPiles)
		s.DrawPiles[pile] = append(s.DrawPiles[pile], c)
	}
	return s, nil
}
