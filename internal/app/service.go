package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	goruntime "runtime"
	"strings"
	"sync"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/samber/lo"

	"archsdinos/internal/domain"
	"archsdinos/internal/ports"
)

// Options configures a GameActionService. Only Logger is required.
type Options struct {
	Logger        runtime.Logger
	Statistics    ports.StatisticsPort // nil disables match recording
	Rules         Rules
	Seed          int64 // 0 seeds from the clock
	Now           func() time.Time
	NotifyTimeout time.Duration
}

// GameActionService is the entry point for every player action. Each action
// holds the session lock for its whole validate, mutate and notify sequence
// and returns a Code; raw errors never reach the caller.
type GameActionService struct {
	sessions  *GameSessionManager
	validator *GameValidationService
	handler   *GameActionHandler
	battles   *BattleResolver
	ends      *GameEndHandler
	notifier  *GameNotificationService
	stats     ports.StatisticsPort
	logger    runtime.Logger
	rules     Rules
	rng       *rand.Rand
	now       func() time.Time
}

func NewGameActionService(sessions *GameSessionManager, opts Options) *GameActionService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(&lockedSource{src: rand.NewSource(seed)})

	return &GameActionService{
		sessions:  sessions,
		validator: NewGameValidationService(opts.Logger),
		handler:   NewGameActionHandler(rng),
		battles:   NewBattleResolver(),
		ends:      NewGameEndHandler(opts.Now),
		notifier:  NewGameNotificationService(opts.Logger, opts.NotifyTimeout),
		stats:     opts.Statistics,
		logger:    opts.Logger,
		rules:     opts.Rules.withDefaults(),
		rng:       rng,
		now:       opts.Now,
	}
}

// lockedSource makes a rand.Source safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (l *lockedSource) Int63() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Int63()
}

func (l *lockedSource) Seed(seed int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.src.Seed(seed)
}

// Sessions exposes the registry the service operates on.
func (svc *GameActionService) Sessions() *GameSessionManager { return svc.sessions }

// Rules returns the effective match rules.
func (svc *GameActionService) Rules() Rules { return svc.rules }

type action func(s *domain.GameSession, log runtime.Logger) Code

// run executes fn under the session lock inside the recover boundary, then
// applies the post-action hook. endedCode is returned instead of Success when
// the hook ended the match.
func (svc *GameActionService) run(ctx context.Context, name, matchID, userID string, endedCode Code, fn action) (code Code) {
	log := svc.logger.WithFields(map[string]interface{}{
		"match_id": matchID,
		"user_id":  userID,
		"action":   name,
	})

	s, ok := svc.sessions.GetSession(matchID)
	if !ok {
		log.Warn("session not found")
		return CodeUnexpectedError
	}

	s.Lock()
	defer s.Unlock()
	defer func() {
		if r := recover(); r != nil {
			code = classifyPanic(r)
			log.WithField("panic", fmt.Sprint(r)).Error("action failed, returning %s", code)
		}
	}()

	if code = fn(s, log); code != CodeSuccess {
		return code
	}

	ended, err := svc.afterAction(ctx, s, log)
	if err != nil {
		return classifyError(err)
	}
	if ended {
		return endedCode
	}
	return CodeSuccess
}

func classifyPanic(r any) Code {
	if err, ok := r.(error); ok {
		return classifyError(err)
	}
	return CodeUnexpectedError
}

func classifyError(err error) Code {
	var rerr goruntime.Error
	switch {
	case errors.As(err, &rerr) && strings.Contains(rerr.Error(), "index out of range"):
		return CodeInvalidDrawPile
	case errors.Is(err, ports.ErrPersistence):
		return CodeDatabaseError
	default:
		return CodeUnexpectedError
	}
}

// afterAction advances the turn once the move budget is spent, then ends the
// match if a terminal condition holds.
func (svc *GameActionService) afterAction(ctx context.Context, s *domain.GameSession, log runtime.Logger) (bool, error) {
	if s.IsStarted() && s.RemainingMoves() == 0 {
		svc.advanceTurn(ctx, s, log)
	}
	if !svc.ends.ShouldGameEnd(s) {
		return false, nil
	}
	return true, svc.finish(ctx, s, log)
}

func (svc *GameActionService) advanceTurn(ctx context.Context, s *domain.GameSession, log runtime.Logger) {
	prev := s.CurrentTurn
	next := svc.handler.NextPlayer(s)
	if next == nil {
		log.Warn("no eligible player for the next turn")
		return
	}
	refilled := svc.handler.RefillDrawPiles(s)
	if refilled {
		log.Debug("discard reshuffled into draw piles")
	}
	s.StartTurn(next.UserID)

	svc.notifier.Publish(ctx, s, Event{
		Kind: EventTurnChanged,
		Payload: TurnChangedPayload{
			MatchID:        s.MatchID,
			PreviousUserID: prev,
			CurrentUserID:  next.UserID,
			TurnNumber:     s.TurnNumber,
			RemainingMoves: s.RemainingMoves(),
			PilesRefilled:  refilled,
		},
	})
}

// finish ends the match, notifies everyone, records statistics and drops the
// session from the registry. A statistics failure is returned wrapped in
// ports.ErrPersistence; the match is closed either way.
func (svc *GameActionService) finish(ctx context.Context, s *domain.GameSession, log runtime.Logger) error {
	res, ok := svc.ends.EndGame(s)
	if !ok {
		return nil
	}
	svc.sessions.RemoveSession(s.MatchID)

	svc.notifier.Publish(ctx, s, Event{Kind: EventGameEnded, Payload: gameEndedPayload(res)})
	log.WithFields(map[string]interface{}{
		"reason": res.Reason,
		"winner": res.WinnerID,
		"points": res.WinnerPoints,
	}).Info("match ended")

	if svc.stats == nil {
		return nil
	}
	rctx, cancel := context.WithTimeout(ctx, DefaultRecordTimeout)
	defer cancel()
	if err := svc.stats.RecordMatch(rctx, res.Record(s)); err != nil {
		if !errors.Is(err, ports.ErrPersistence) {
			err = fmt.Errorf("%w: %w", ports.ErrPersistence, err)
		}
		log.WithField("error", err.Error()).Error("failed to record match")
		return err
	}
	return nil
}

func gameEndedPayload(res *GameEndResult) GameEndedPayload {
	return GameEndedPayload{
		MatchID:      res.MatchID,
		Reason:       res.Reason,
		WinnerUserID: res.WinnerID,
		WinnerPoints: res.WinnerPoints,
		Scores: lo.Map(res.Scores, func(sc ports.PlayerScore, _ int) ScoreView {
			return ScoreView{UserID: sc.UserID, Username: sc.Username, Points: sc.Points, Rank: sc.Rank}
		}),
		DurationSeconds: int(res.Duration / time.Second),
	}
}

// StartGame deals a new match for seats, registers it and opens the first turn.
func (svc *GameActionService) StartGame(ctx context.Context, matchID string, seats []Seat) (*domain.GameSession, error) {
	s, err := NewSession(matchID, seats, svc.rules, svc.rng)
	if err != nil {
		return nil, err
	}

	s.Lock()
	defer s.Unlock()
	if err := svc.sessions.AddSession(s); err != nil {
		return nil, err
	}
	s.Start(s.Players[0].UserID, svc.now())

	events := make([]Event, 0, len(s.Players)+1)
	players := playerViews(s)
	for _, p := range s.Players {
		events = append(events, Event{
			Kind: EventGameInitialized,
			Payload: GameInitializedPayload{
				MatchID:   s.MatchID,
				UserID:    p.UserID,
				Hand:      cardViews(p.Hand),
				Players:   players,
				Board:     boardView(s.Board),
				PileSizes: s.PileSizes(),
			},
			Recipients: []string{p.UserID},
		})
	}
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			MatchID:          s.MatchID,
			FirstTurnUserID:  s.CurrentTurn,
			TurnNumber:       s.TurnNumber,
			MovesPerTurn:     s.MovesPerTurn,
			RemainingSeconds: int(svc.ends.RemainingTime(s) / time.Second),
		},
	})
	svc.notifier.Publish(ctx, s, events...)

	svc.logger.WithFields(map[string]interface{}{
		"match_id": matchID,
		"players":  len(s.Players),
	}).Info("match started")
	return s, nil
}

// DrawCard draws the top card of pile for userID.
func (svc *GameActionService) DrawCard(ctx context.Context, matchID, userID string, pile int) Code {
	return svc.run(ctx, "draw_card", matchID, userID, CodeSuccess, func(s *domain.GameSession, log runtime.Logger) Code {
		v := svc.validator.ValidateDraw(s, userID, pile)
		if !v.OK {
			return v.Code
		}
		if !s.ConsumeMove() {
			return CodeAlreadyDrewThisTurn
		}
		card, ok := svc.handler.DrawCard(s, v.Value, pile)
		if !ok {
			log.Warn("draw pile %d unexpectedly empty", pile)
			return CodeUnexpectedError
		}
		svc.notifier.Publish(ctx, s, cardDrawnEvents(s, userID, pile, card)...)
		return CodeSuccess
	})
}

// cardDrawnEvents shows the card to the drawer, and to the others only when
// it went to the board.
func cardDrawnEvents(s *domain.GameSession, userID string, pile int, card domain.Card) []Event {
	view := cardView(card)
	base := CardDrawnPayload{
		MatchID:   s.MatchID,
		UserID:    userID,
		Pile:      pile,
		ToBoard:   card.IsArch(),
		PileSizes: s.PileSizes(),
	}
	own := base
	own.Card = &view
	events := []Event{{Kind: EventCardDrawn, Payload: own, Recipients: []string{userID}}}

	others := lo.FilterMap(s.Players, func(p *domain.Player, _ int) (string, bool) {
		return p.UserID, p.UserID != userID
	})
	if len(others) == 0 {
		return events
	}
	public := base
	if card.IsArch() {
		public.Card = &view
	}
	return append(events, Event{Kind: EventCardDrawn, Payload: public, Recipients: others})
}

// PlayDinoHead starts a new dino from a head card in hand.
func (svc *GameActionService) PlayDinoHead(ctx context.Context, matchID, userID string, cardID int) Code {
	return svc.run(ctx, "play_dino_head", matchID, userID, CodeSuccess, func(s *domain.GameSession, log runtime.Logger) Code {
		v := svc.validator.ValidatePlayHead(s, userID, cardID)
		if !v.OK {
			return v.Code
		}
		if !s.ConsumeMove() {
			return CodeAlreadyPlayedTwoCards
		}
		dino, ok := svc.handler.PlayDinoHead(s, v.Value.Player, cardID)
		if !ok {
			log.Warn("could not play dino head %d", cardID)
			return CodeUnexpectedError
		}
		svc.notifier.Publish(ctx, s, Event{
			Kind:    EventDinoHeadPlayed,
			Payload: DinoHeadPlayedPayload{MatchID: s.MatchID, UserID: userID, Dino: dinoView(dino)},
		})
		return CodeSuccess
	})
}

// AttachBodyPartToDino attaches a body part in hand to the dino keyed by headCardID.
func (svc *GameActionService) AttachBodyPartToDino(ctx context.Context, matchID, userID string, cardID, headCardID int) Code {
	return svc.run(ctx, "attach_body_part", matchID, userID, CodeSuccess, func(s *domain.GameSession, log runtime.Logger) Code {
		v := svc.validator.ValidateAttach(s, userID, cardID, headCardID)
		if !v.OK {
			return v.Code
		}
		if !s.ConsumeMove() {
			return CodeAlreadyPlayedTwoCards
		}
		if !svc.handler.AttachBodyPart(s, v.Value.Player, cardID, headCardID) {
			log.Warn("could not attach card %d to dino %d", cardID, headCardID)
			return CodeUnexpectedError
		}
		svc.notifier.Publish(ctx, s, Event{
			Kind: EventBodyPartAttached,
			Payload: BodyPartAttachedPayload{
				MatchID:    s.MatchID,
				UserID:     userID,
				HeadCardID: headCardID,
				Card:       cardView(v.Value.Card),
				Dino:       dinoView(v.Value.Dino),
			},
		})
		return CodeSuccess
	})
}

// ProvokeArchArmy battles the named board army with userID's dinos.
func (svc *GameActionService) ProvokeArchArmy(ctx context.Context, matchID, userID, army string) Code {
	return svc.run(ctx, "provoke_army", matchID, userID, CodeSuccess, func(s *domain.GameSession, log runtime.Logger) Code {
		v := svc.validator.ValidateProvoke(s, userID, army)
		if !v.OK {
			return v.Code
		}
		if !s.ConsumeMove() {
			return CodeAlreadyTookAction
		}
		s.MainActionTaken = true

		target := v.Value.Army
		svc.notifier.Publish(ctx, s, Event{
			Kind: EventArchArmyProvoked,
			Payload: ArchArmyProvokedPayload{
				MatchID:   s.MatchID,
				UserID:    userID,
				Army:      target.String(),
				ArchPower: s.Board.Power(target),
			},
		})

		res, ok := svc.battles.ResolveBattle(s, target)
		if !ok {
			log.Warn("battle against %s could not be resolved", target)
			return CodeUnexpectedError
		}
		log.WithFields(map[string]interface{}{
			"army":       target.String(),
			"arch_power": res.ArchPower,
			"dinos_won":  res.DinosWon,
		}).Debug("battle resolved")

		svc.notifier.Publish(ctx, s, Event{
			Kind: EventBattleResolved,
			Payload: BattleResolvedPayload{
				MatchID:       s.MatchID,
				Army:          target.String(),
				ArchPower:     res.ArchPower,
				PlayerPowers:  res.PlayerPowers,
				DinosWon:      res.DinosWon,
				WinnerUserID:  res.WinnerID,
				WinnerPower:   res.WinnerPower,
				PointsAwarded: res.PointsAwarded,
			},
		})
		return CodeSuccess
	})
}

// EndTurn passes the turn to the next connected player. It returns
// CodeGameEnded when that closes the match.
func (svc *GameActionService) EndTurn(ctx context.Context, matchID, userID string) Code {
	return svc.run(ctx, "end_turn", matchID, userID, CodeGameEnded, func(s *domain.GameSession, log runtime.Logger) Code {
		if v := svc.validator.ValidateEndTurn(s, userID); !v.OK {
			return v.Code
		}
		svc.advanceTurn(ctx, s, log)
		return CodeSuccess
	})
}

// RemovePlayer takes a player out of the match, passing their turn on. It
// returns CodeGameEnded when too few players remain.
func (svc *GameActionService) RemovePlayer(ctx context.Context, matchID, userID, reason string) Code {
	return svc.run(ctx, "remove_player", matchID, userID, CodeGameEnded, func(s *domain.GameSession, log runtime.Logger) Code {
		p, ok := s.Player(userID)
		if !ok {
			log.Warn("player not in session")
			return CodeUnexpectedError
		}
		if !p.Connected || !s.IsStarted() {
			return CodeSuccess
		}
		p.Connected = false
		p.Callback = nil
		log.WithField("reason", reason).Info("player removed")

		svc.notifier.Publish(ctx, s, Event{
			Kind:    EventPlayerExpelled,
			Payload: PlayerExpelledPayload{MatchID: s.MatchID, UserID: userID, Reason: reason},
		})
		if s.CurrentTurn == userID {
			svc.advanceTurn(ctx, s, log)
		}
		return CodeSuccess
	})
}

// ReconnectPlayer attaches a new callback to a seated player.
func (svc *GameActionService) ReconnectPlayer(matchID, userID string, cb ports.PlayerCallback) Code {
	s, ok := svc.sessions.GetSession(matchID)
	if !ok {
		return CodeUnexpectedError
	}
	s.Lock()
	defer s.Unlock()
	p, ok := s.Player(userID)
	if !ok || !p.Connected {
		return CodeUnexpectedError
	}
	p.Callback = cb
	return CodeSuccess
}

// GameState returns userID's view of the match.
func (svc *GameActionService) GameState(matchID, userID string) (GameStateView, Code) {
	s, ok := svc.sessions.GetSession(matchID)
	if !ok {
		return GameStateView{}, CodeUnexpectedError
	}
	s.Lock()
	defer s.Unlock()
	p, ok := s.Player(userID)
	if !ok {
		return GameStateView{}, CodeUnexpectedError
	}
	return GameStateView{
		MatchID:             s.MatchID,
		UserID:              userID,
		Phase:               s.Phase,
		Hand:                cardViews(p.Hand),
		Players:             playerViews(s),
		Board:               boardView(s.Board),
		PileSizes:           s.PileSizes(),
		DiscardSize:         len(s.Discard),
		CurrentTurn:         s.CurrentTurn,
		TurnNumber:          s.TurnNumber,
		RemainingMoves:      s.RemainingMoves(),
		MaxCardsPerTurn:     s.MaxCardsPerTurn,
		HasDrawnThisTurn:    s.HasDrawnThisTurn,
		CardsPlayedThisTurn: s.CardsPlayedThisTurn,
		MainActionTaken:     s.MainActionTaken,
		RemainingSeconds:    int(svc.ends.RemainingTime(s) / time.Second),
	}, CodeSuccess
}

// ExpireTimedOut ends every match past its time limit and returns how many
// were closed.
func (svc *GameActionService) ExpireTimedOut(ctx context.Context) int {
	closed := 0
	for _, s := range svc.sessions.Sessions() {
		if svc.expire(ctx, s) {
			closed++
		}
	}
	return closed
}

func (svc *GameActionService) expire(ctx context.Context, s *domain.GameSession) bool {
	s.Lock()
	defer s.Unlock()
	if !s.IsStarted() || !svc.ends.TimeExpired(s) {
		return false
	}
	log := svc.logger.WithField("match_id", s.MatchID)
	if err := svc.finish(ctx, s, log); err != nil {
		log.WithField("error", err.Error()).Warn("timed out match closed without statistics")
	}
	return true
}
