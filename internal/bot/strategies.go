package bot

import (
	"fmt"

	"archsdinos/internal/app"
	"archsdinos/internal/domain"
)

// CautiousBot draws once from the biggest pile and ends its turn.
type CautiousBot struct{}

func (b *CautiousBot) CalculateMove(view app.GameStateView) (Move, error) {
	if pile, ok := drawTarget(view); ok {
		return Move{Kind: MoveDraw, Pile: pile}, nil
	}
	return Move{Kind: MoveEndTurn}, nil
}

// GreedyBot provokes any army it can beat, then builds dinos, then draws.
type GreedyBot struct{}

func (b *GreedyBot) CalculateMove(view app.GameStateView) (Move, error) {
	me, ok := selfView(view)
	if !ok {
		return Move{Kind: MoveEndTurn}, fmt.Errorf("bot %s is not seated in match %s", view.UserID, view.MatchID)
	}

	if !view.MainActionTaken {
		if army, ok := winnableArmy(view, me); ok {
			return Move{Kind: MoveProvoke, Army: army}, nil
		}
	}

	if view.CardsPlayedThisTurn < view.MaxCardsPerTurn {
		dinos := rebuildDinos(me)
		for _, c := range view.Hand {
			card, ok := domain.LookupCard(c.ID)
			if !ok || card.Category != domain.CategoryBodyPart {
				continue
			}
			for _, d := range dinos {
				if d.CanAttach(card) == nil {
					return Move{Kind: MoveAttach, CardID: card.ID, HeadID: d.Head.ID}, nil
				}
			}
		}
		for _, c := range view.Hand {
			card, ok := domain.LookupCard(c.ID)
			if ok && domain.IsValidDinoHead(card) {
				return Move{Kind: MovePlayHead, CardID: card.ID}, nil
			}
		}
	}

	if pile, ok := drawTarget(view); ok {
		return Move{Kind: MoveDraw, Pile: pile}, nil
	}
	return Move{Kind: MoveEndTurn}, nil
}

func selfView(view app.GameStateView) (app.PlayerView, bool) {
	for _, p := range view.Players {
		if p.UserID == view.UserID {
			return p, true
		}
	}
	return app.PlayerView{}, false
}

// drawTarget picks the largest pile, lowest index first on ties.
func drawTarget(view app.GameStateView) (int, bool) {
	if view.HasDrawnThisTurn {
		return 0, false
	}
	best, size := -1, 0
	for i, n := range view.PileSizes {
		if n > size {
			best, size = i, n
		}
	}
	return best, best >= 0
}

// winnableArmy finds an army whose archs the bot's dinos beat outright and
// where no opponent matches the bot's power.
func winnableArmy(view app.GameStateView, me app.PlayerView) (string, bool) {
	for _, army := range domain.ArmyTypes {
		name := army.String()
		board, ok := view.Board[name]
		if !ok || len(board.Archs) == 0 {
			continue
		}
		mine := armyPower(me, name)
		if mine <= board.Power {
			continue
		}
		beaten := false
		for _, p := range view.Players {
			if p.UserID != me.UserID && p.Connected && armyPower(p, name) >= mine {
				beaten = true
				break
			}
		}
		if !beaten {
			return name, true
		}
	}
	return "", false
}

func armyPower(p app.PlayerView, army string) int {
	total := 0
	for _, d := range p.Dinos {
		if d.Army == army {
			total += d.Power
		}
	}
	return total
}

// rebuildDinos turns the public dino views back into domain dinos so the
// attach rules can be checked locally.
func rebuildDinos(me app.PlayerView) []*domain.Dino {
	dinos := make([]*domain.Dino, 0, len(me.Dinos))
	for _, dv := range me.Dinos {
		head, ok := domain.LookupCard(dv.HeadCardID)
		if !ok {
			continue
		}
		d := domain.NewDino(head)
		for _, cv := range dv.Cards {
			if cv.ID == head.ID {
				continue
			}
			if part, ok := domain.LookupCard(cv.ID); ok {
				_ = d.Attach(part)
			}
		}
		dinos = append(dinos, d)
	}
	return dinos
}
