package app

import (
	"context"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"archsdinos/internal/domain"
)

// GameNotificationService fans events out to the players of a session.
// A failing or panicking recipient is logged and skipped.
type GameNotificationService struct {
	logger  runtime.Logger
	timeout time.Duration
}

func NewGameNotificationService(logger runtime.Logger, timeout time.Duration) *GameNotificationService {
	if timeout <= 0 {
		timeout = DefaultNotifyTimeout
	}
	return &GameNotificationService{logger: logger, timeout: timeout}
}

// Publish delivers each event to its recipients, in order.
func (n *GameNotificationService) Publish(ctx context.Context, s *domain.GameSession, events ...Event) {
	for _, ev := range events {
		for _, p := range recipients(s, ev) {
			n.deliver(ctx, s.MatchID, p, ev)
		}
	}
}

func recipients(s *domain.GameSession, ev Event) []*domain.Player {
	var targets map[string]bool
	if len(ev.Recipients) > 0 {
		targets = make(map[string]bool, len(ev.Recipients))
		for _, id := range ev.Recipients {
			targets[id] = true
		}
	}
	out := make([]*domain.Player, 0, len(s.Players))
	for _, p := range s.Players {
		if !p.Connected || p.Callback == nil {
			continue
		}
		if targets != nil && !targets[p.UserID] {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (n *GameNotificationService) deliver(ctx context.Context, matchID string, p *domain.Player, ev Event) {
	log := n.logger.WithFields(map[string]interface{}{
		"match_id": matchID,
		"user_id":  p.UserID,
		"event":    string(ev.Kind),
	})
	defer func() {
		if r := recover(); r != nil {
			log.Error("notification panicked: %v", r)
		}
	}()

	dctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()
	if err := p.Callback.Deliver(dctx, string(ev.Kind), ev.Payload); err != nil {
		log.WithField("error", err.Error()).Error("notification failed")
	}
}
