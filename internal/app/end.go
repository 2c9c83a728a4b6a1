package app

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"archsdinos/internal/domain"
	"archsdinos/internal/ports"
)

// Reasons a match ends.
const (
	EndReasonDecksExhausted   = "decks_exhausted"
	EndReasonNotEnoughPlayers = "not_enough_players"
	EndReasonTimeLimit        = "time_limit"
)

// GameEndResult is the final outcome of a match.
type GameEndResult struct {
	MatchID      string
	Reason       string
	WinnerID     string
	WinnerPoints int
	Scores       []ports.PlayerScore // ranked, best first
	EndedAt      time.Time
	Duration     time.Duration
}

// GameEndHandler decides when a match is over and builds its result.
type GameEndHandler struct {
	now func() time.Time
}

func NewGameEndHandler(now func() time.Time) *GameEndHandler {
	if now == nil {
		now = time.Now
	}
	return &GameEndHandler{now: now}
}

// endReason returns the first terminal condition that holds, or "".
func (h *GameEndHandler) endReason(s *domain.GameSession) string {
	switch {
	case domain.CountConnected(s) < domain.MinConnectedPlayers:
		return EndReasonNotEnoughPlayers
	case h.TimeExpired(s):
		return EndReasonTimeLimit
	case s.DrawPilesEmpty() && len(s.Discard) == 0:
		return EndReasonDecksExhausted
	default:
		return ""
	}
}

// ShouldGameEnd reports whether an in-progress match has reached a terminal condition.
func (h *GameEndHandler) ShouldGameEnd(s *domain.GameSession) bool {
	return s.IsStarted() && h.endReason(s) != ""
}

// TimeExpired reports whether the match time limit has elapsed.
func (h *GameEndHandler) TimeExpired(s *domain.GameSession) bool {
	return !s.StartedAt.IsZero() && s.Elapsed(h.now()) >= s.MatchDuration
}

// RemainingTime is the match time left, floored at zero.
func (h *GameEndHandler) RemainingTime(s *domain.GameSession) time.Duration {
	left := s.MatchDuration - s.Elapsed(h.now())
	if left < 0 {
		return 0
	}
	return left
}

// EndGame closes the match and ranks players by points, ties by seat order.
// It refuses when no terminal condition holds.
func (h *GameEndHandler) EndGame(s *domain.GameSession) (*GameEndResult, bool) {
	reason := h.endReason(s)
	if !s.IsStarted() || reason == "" {
		return nil, false
	}
	now := h.now()
	s.Phase = domain.PhaseEnded

	ranked := append([]*domain.Player(nil), s.Players...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].TurnOrder < ranked[j].TurnOrder
	})
	scores := lo.Map(ranked, func(p *domain.Player, i int) ports.PlayerScore {
		return ports.PlayerScore{
			UserID:   p.UserID,
			Username: p.Username,
			Points:   p.Points,
			Rank:     i + 1,
			IsBot:    p.IsBot,
		}
	})

	res := &GameEndResult{
		MatchID:  s.MatchID,
		Reason:   reason,
		Scores:   scores,
		EndedAt:  now,
		Duration: s.Elapsed(now),
	}
	if len(scores) > 0 {
		res.WinnerID = scores[0].UserID
		res.WinnerPoints = scores[0].Points
	}
	return res, true
}

// Record converts a result to the statistics port form.
func (r *GameEndResult) Record(s *domain.GameSession) ports.MatchRecord {
	return ports.MatchRecord{
		MatchID:  r.MatchID,
		Reason:   r.Reason,
		WinnerID: r.WinnerID,
		Scores:   r.Scores,
		Turns:    s.TurnNumber,
		Started:  s.StartedAt,
		Ended:    r.EndedAt,
	}
}
