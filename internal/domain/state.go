package domain

import (
	"sort"

	"archsdinos/internal/ports"
)

// Phase represents the lifecycle stage of a match.
type Phase string

const (
	// PhaseNotStarted is the state between setup and the first turn.
	PhaseNotStarted Phase = "not_started"
	// PhaseInProgress is the active game state where turns are played.
	PhaseInProgress Phase = "in_progress"
	// PhaseEnded is the state after a game concludes.
	PhaseEnded Phase = "ended"
)

// Player holds the state of one seat in a match.
type Player struct {
	UserID    string
	Username  string
	TurnOrder int // 0-based seat order
	IsBot     bool

	Hand   []Card
	Dinos  map[int]*Dino // head card id -> dino
	Points int

	Connected bool
	Callback  ports.PlayerCallback // nil for bots or while disconnected
}

// NewPlayer returns a connected player with an empty hand.
func NewPlayer(userID, username string, turnOrder int, cb ports.PlayerCallback) *Player {
	return &Player{
		UserID:    userID,
		Username:  username,
		TurnOrder: turnOrder,
		Dinos:     make(map[int]*Dino),
		Connected: true,
		Callback:  cb,
	}
}

// HandCard returns the card with the given id if it is in the hand.
func (p *Player) HandCard(cardID int) (Card, bool) {
	for _, c := range p.Hand {
		if c.ID == cardID {
			return c, true
		}
	}
	return Card{}, false
}

// RemoveFromHand removes a card from the hand, preserving order of the rest.
func (p *Player) RemoveFromHand(cardID int) (Card, bool) {
	for i, c := range p.Hand {
		if c.ID == cardID {
			p.Hand = append(p.Hand[:i:i], p.Hand[i+1:]...)
			return c, true
		}
	}
	return Card{}, false
}

// DinoPower sums the power of every dino whose head matches army.
func (p *Player) DinoPower(army ArmyType) int {
	total := 0
	for _, d := range p.Dinos {
		if d.Army() == army {
			total += d.TotalPower()
		}
	}
	return total
}

// ClearDinosByArmy removes every dino of the given army and returns their cards.
func (p *Player) ClearDinosByArmy(army ArmyType) []Card {
	var cleared []Card
	for id, d := range p.Dinos {
		if d.Army() != army {
			continue
		}
		cleared = append(cleared, d.Cards()...)
		delete(p.Dinos, id)
	}
	sort.Slice(cleared, func(i, j int) bool { return cleared[i].ID < cleared[j].ID })
	return cleared
}
