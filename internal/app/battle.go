package app

import (
	"archsdinos/internal/domain"
)

// BattleResult is the outcome of provoking one arch army.
type BattleResult struct {
	Army          domain.ArmyType
	ArchPower     int
	PlayerPowers  map[string]int // connected players only
	DinosWon      bool
	WinnerID      string
	WinnerPower   int
	PointsAwarded int
	Discarded     []domain.Card
}

// BattleResolver settles provocations against the central board.
type BattleResolver struct{}

func NewBattleResolver() *BattleResolver {
	return &BattleResolver{}
}

// ResolveBattle compares the strongest player's dinos of army against the
// board. Dinos win only when strictly stronger; ties between players go to
// the earliest seat. On a win the winner scores the arch power and both the
// winner's dinos of that army and the board army move to the discard.
func (r *BattleResolver) ResolveBattle(s *domain.GameSession, army domain.ArmyType) (*BattleResult, bool) {
	if !army.Valid() || s.Board == nil {
		return nil, false
	}

	res := &BattleResult{
		Army:         army,
		ArchPower:    s.Board.Power(army),
		PlayerPowers: make(map[string]int, len(s.Players)),
	}

	var winner *domain.Player
	for _, p := range s.ConnectedPlayers() {
		power := p.DinoPower(army)
		res.PlayerPowers[p.UserID] = power
		if winner == nil || power > res.WinnerPower {
			winner = p
			res.WinnerPower = power
		}
	}

	if winner == nil || res.WinnerPower <= res.ArchPower {
		return res, true
	}

	res.DinosWon = true
	res.WinnerID = winner.UserID
	res.PointsAwarded = res.ArchPower
	winner.Points += res.ArchPower

	res.Discarded = append(winner.ClearDinosByArmy(army), s.Board.ClearArmy(army)...)
	s.Discard = append(s.Discard, res.Discarded...)
	return res, true
}
