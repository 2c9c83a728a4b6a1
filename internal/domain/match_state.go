package domain

import (
	"sync"
	"sync/atomic"
	"time"
)

// GameSession captures the authoritative state of one match.
type GameSession struct {
	// mu serializes whole actions (validate, mutate, notify) on this session.
	mu sync.Mutex

	MatchID string
	Players []*Player // turn order

	DrawPiles [][]Card // top of a pile is its last element
	Discard   []Card
	Board     *CentralBoard

	Phase       Phase
	CurrentTurn string
	TurnNumber  int

	remainingMoves      atomic.Int32
	HasDrawnThisTurn    bool
	CardsPlayedThisTurn int
	MainActionTaken     bool

	MovesPerTurn    int
	MaxCardsPerTurn int
	MatchDuration   time.Duration
	StartedAt       time.Time
}

// NewGameSession returns an unstarted session with empty piles.
func NewGameSession(matchID string, players []*Player) *GameSession {
	return &GameSession{
		MatchID:         matchID,
		Players:         players,
		DrawPiles:       make([][]Card, DrawPileCount),
		Board:           NewCentralBoard(),
		Phase:           PhaseNotStarted,
		MovesPerTurn:    DefaultMovesPerTurn,
		MaxCardsPerTurn: DefaultMaxCardsPerTurn,
		MatchDuration:   DefaultMatchDuration,
	}
}

// Lock acquires the session action lock.
func (s *GameSession) Lock() { s.mu.Lock() }

// Unlock releases the session action lock.
func (s *GameSession) Unlock() { s.mu.Unlock() }

// IsStarted reports whether turns are being played.
func (s *GameSession) IsStarted() bool {
	return s.Phase == PhaseInProgress
}

// Start moves the session in progress and opens the first turn.
func (s *GameSession) Start(firstTurn string, now time.Time) {
	s.Phase = PhaseInProgress
	s.StartedAt = now
	s.StartTurn(firstTurn)
}

// StartTurn hands the turn to userID and resets every per-turn counter together.
func (s *GameSession) StartTurn(userID string) {
	s.CurrentTurn = userID
	s.TurnNumber++
	s.remainingMoves.Store(int32(s.MovesPerTurn))
	s.HasDrawnThisTurn = false
	s.CardsPlayedThisTurn = 0
	s.MainActionTaken = false
}

// RemainingMoves returns the move budget left in the current turn.
func (s *GameSession) RemainingMoves() int {
	return int(s.remainingMoves.Load())
}

// ConsumeMove atomically takes one unit of the move budget. It fails, leaving
// the budget at zero, when nothing is left.
func (s *GameSession) ConsumeMove() bool {
	for {
		current := s.remainingMoves.Load()
		if current <= 0 {
			return false
		}
		if s.remainingMoves.CompareAndSwap(current, current-1) {
			return true
		}
	}
}

// Player finds a seat by user id.
func (s *GameSession) Player(userID string) (*Player, bool) {
	for _, p := range s.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return nil, false
}

// ConnectedPlayers returns the seats still taking part, in turn order.
func (s *GameSession) ConnectedPlayers() []*Player {
	out := make([]*Player, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Connected {
			out = append(out, p)
		}
	}
	return out
}

// DrawPilesEmpty reports whether every draw pile is exhausted.
func (s *GameSession) DrawPilesEmpty() bool {
	for _, pile := range s.DrawPiles {
		if len(pile) > 0 {
			return false
		}
	}
	return true
}

// PileSizes returns the number of cards left in each draw pile.
func (s *GameSession) PileSizes() []int {
	sizes := make([]int, len(s.DrawPiles))
	for i, pile := range s.DrawPiles {
		sizes[i] = len(pile)
	}
	return sizes
}

// Elapsed is the time since the first turn started.
func (s *GameSession) Elapsed(now time.Time) time.Duration {
	if s.StartedAt.IsZero() {
		return 0
	}
	return now.Sub(s.StartedAt)
}
