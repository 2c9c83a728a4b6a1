package app

import (
	"math/rand"

	"archsdinos/internal/domain"
)

// GameActionHandler applies state transitions once validation passed and a
// move was consumed. Each method refuses to mutate on a structural violation
// even when called without prior validation.
type GameActionHandler struct {
	rng *rand.Rand
}

func NewGameActionHandler(rng *rand.Rand) *GameActionHandler {
	return &GameActionHandler{rng: rng}
}

// DrawCard pops the top of a pile. Archs go to the board army of their
// type, everything else to the hand.
func (h *GameActionHandler) DrawCard(s *domain.GameSession, p *domain.Player, pile int) (domain.Card, bool) {
	rest, card, ok := domain.PopCard(s.DrawPiles[pile])
	if !ok {
		return domain.Card{}, false
	}
	s.DrawPiles[pile] = rest
	if card.IsArch() {
		if !s.Board.AddArch(card) {
			s.Discard = append(s.Discard, card)
		}
	} else {
		p.Hand = append(p.Hand, card)
	}
	s.HasDrawnThisTurn = true
	return card, true
}

// PlayDinoHead moves a head from the hand to a new dino.
func (h *GameActionHandler) PlayDinoHead(s *domain.GameSession, p *domain.Player, cardID int) (*domain.Dino, bool) {
	card, ok := p.HandCard(cardID)
	if !ok || !domain.IsValidDinoHead(card) {
		return nil, false
	}
	if _, exists := p.Dinos[cardID]; exists {
		return nil, false
	}
	p.RemoveFromHand(cardID)
	dino := domain.NewDino(card)
	p.Dinos[cardID] = dino
	s.CardsPlayedThisTurn++
	return dino, true
}

// AttachBodyPart moves a body part from the hand onto the dino keyed by headCardID.
func (h *GameActionHandler) AttachBodyPart(s *domain.GameSession, p *domain.Player, cardID, headCardID int) bool {
	dino, ok := p.Dinos[headCardID]
	if !ok {
		return false
	}
	card, ok := p.HandCard(cardID)
	if !ok {
		return false
	}
	if err := dino.Attach(card); err != nil {
		return false
	}
	p.RemoveFromHand(cardID)
	s.CardsPlayedThisTurn++
	return true
}

// NextPlayer returns the next connected seat after the current turn,
// wrapping around. It is nil when nobody is connected.
func (h *GameActionHandler) NextPlayer(s *domain.GameSession) *domain.Player {
	n := len(s.Players)
	if n == 0 {
		return nil
	}
	start := -1
	for i, p := range s.Players {
		if p.UserID == s.CurrentTurn {
			start = i
			break
		}
	}
	for step := 1; step <= n; step++ {
		idx := (start + step) % n
		if idx < 0 {
			idx += n
		}
		if p := s.Players[idx]; p.Connected {
			return p
		}
	}
	return nil
}

// RefillDrawPiles deals the shuffled discard back into the piles once every
// pile is empty. It reports whether anything was dealt.
func (h *GameActionHandler) RefillDrawPiles(s *domain.GameSession) bool {
	if !s.DrawPilesEmpty() || len(s.Discard) == 0 {
		return false
	}
	cards := domain.ShuffleDeck(s.Discard, h.rng)
	s.Discard = nil
	for i, c := range cards {
		pile := i % len(s.DrawPiles)
		s.DrawPiles[pile] = append(s.DrawPiles[pile], c)
	}
	return true
}
