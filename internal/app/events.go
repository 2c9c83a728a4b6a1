package app

import (
	"sort"

	"github.com/samber/lo"

	"archsdinos/internal/domain"
)

// EventKind identifies pushed events for dispatch.
type EventKind string

const (
	EventGameInitialized  EventKind = "game_initialized"
	EventGameStarted      EventKind = "game_started"
	EventGameEnded        EventKind = "game_ended"
	EventTurnChanged      EventKind = "turn_changed"
	EventCardDrawn        EventKind = "card_drawn"
	EventDinoHeadPlayed   EventKind = "dino_head_played"
	EventBodyPartAttached EventKind = "body_part_attached"
	EventArchArmyProvoked EventKind = "arch_army_provoked"
	EventBattleResolved   EventKind = "battle_resolved"
	EventPlayerExpelled   EventKind = "player_expelled"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []string // user IDs; empty means broadcast
}

type CardView struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Part     string `json:"part,omitempty"`
	Army     string `json:"army"`
	Power    int    `json:"power"`
}

func cardView(c domain.Card) CardView {
	v := CardView{ID: c.ID, Category: c.Category.String(), Army: c.Army.String(), Power: c.Power}
	if c.Category == domain.CategoryBodyPart {
		v.Part = c.Part.String()
	}
	return v
}

func cardViews(cards []domain.Card) []CardView {
	return lo.Map(cards, func(c domain.Card, _ int) CardView { return cardView(c) })
}

type DinoView struct {
	HeadCardID int        `json:"head_card_id"`
	Army       string     `json:"army"`
	Cards      []CardView `json:"cards"`
	Power      int        `json:"power"`
	Complete   bool       `json:"complete"`
}

func dinoView(d *domain.Dino) DinoView {
	return DinoView{
		HeadCardID: d.Head.ID,
		Army:       d.Army().String(),
		Cards:      cardViews(d.Cards()),
		Power:      d.TotalPower(),
		Complete:   d.Complete(),
	}
}

// BoardView lists each arch army by name.
type BoardView map[string]ArmyView

type ArmyView struct {
	Archs []CardView `json:"archs"`
	Power int        `json:"power"`
}

func boardView(b *domain.CentralBoard) BoardView {
	v := make(BoardView, len(domain.ArmyTypes))
	for _, army := range domain.ArmyTypes {
		v[army.String()] = ArmyView{Archs: cardViews(b.Army(army)), Power: b.Power(army)}
	}
	return v
}

// PlayerView is the public state of a seat.
type PlayerView struct {
	UserID    string     `json:"user_id"`
	Username  string     `json:"username"`
	TurnOrder int        `json:"turn_order"`
	HandSize  int        `json:"hand_size"`
	Dinos     []DinoView `json:"dinos"`
	Points    int        `json:"points"`
	Connected bool       `json:"connected"`
	IsBot     bool       `json:"is_bot"`
}

func playerView(p *domain.Player) PlayerView {
	heads := lo.Keys(p.Dinos)
	sort.Ints(heads)
	return PlayerView{
		UserID:    p.UserID,
		Username:  p.Username,
		TurnOrder: p.TurnOrder,
		HandSize:  len(p.Hand),
		Dinos:     lo.Map(heads, func(id int, _ int) DinoView { return dinoView(p.Dinos[id]) }),
		Points:    p.Points,
		Connected: p.Connected,
		IsBot:     p.IsBot,
	}
}

func playerViews(s *domain.GameSession) []PlayerView {
	return lo.Map(s.Players, func(p *domain.Player, _ int) PlayerView { return playerView(p) })
}

type GameInitializedPayload struct {
	MatchID   string       `json:"match_id"`
	UserID    string       `json:"user_id"`
	Hand      []CardView   `json:"hand"`
	Players   []PlayerView `json:"players"`
	Board     BoardView    `json:"board"`
	PileSizes []int        `json:"pile_sizes"`
}

type GameStartedPayload struct {
	MatchID          string `json:"match_id"`
	FirstTurnUserID  string `json:"first_turn_user_id"`
	TurnNumber       int    `json:"turn_number"`
	MovesPerTurn     int    `json:"moves_per_turn"`
	RemainingSeconds int    `json:"remaining_seconds"`
}

type TurnChangedPayload struct {
	MatchID        string `json:"match_id"`
	PreviousUserID string `json:"previous_user_id,omitempty"`
	CurrentUserID  string `json:"current_user_id"`
	TurnNumber     int    `json:"turn_number"`
	RemainingMoves int    `json:"remaining_moves"`
	PilesRefilled  bool   `json:"piles_refilled,omitempty"`
}

// CardDrawnPayload carries the card only for the drawer, or for everyone
// when the card is an arch going to the board.
type CardDrawnPayload struct {
	MatchID   string    `json:"match_id"`
	UserID    string    `json:"user_id"`
	Pile      int       `json:"pile"`
	Card      *CardView `json:"card,omitempty"`
	ToBoard   bool      `json:"to_board"`
	PileSizes []int     `json:"pile_sizes"`
}

type DinoHeadPlayedPayload struct {
	MatchID string   `json:"match_id"`
	UserID  string   `json:"user_id"`
	Dino    DinoView `json:"dino"`
}

type BodyPartAttachedPayload struct {
	MatchID    string   `json:"match_id"`
	UserID     string   `json:"user_id"`
	HeadCardID int      `json:"head_card_id"`
	Card       CardView `json:"card"`
	Dino       DinoView `json:"dino"`
}

type ArchArmyProvokedPayload struct {
	MatchID   string `json:"match_id"`
	UserID    string `json:"user_id"`
	Army      string `json:"army"`
	ArchPower int    `json:"arch_power"`
}

type BattleResolvedPayload struct {
	MatchID       string         `json:"match_id"`
	Army          string         `json:"army"`
	ArchPower     int            `json:"arch_power"`
	PlayerPowers  map[string]int `json:"player_powers"`
	DinosWon      bool           `json:"dinos_won"`
	WinnerUserID  string         `json:"winner_user_id,omitempty"`
	WinnerPower   int            `json:"winner_power"`
	PointsAwarded int            `json:"points_awarded"`
}

type ScoreView struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Points   int    `json:"points"`
	Rank     int    `json:"rank"`
}

type GameEndedPayload struct {
	MatchID         string      `json:"match_id"`
	Reason          string      `json:"reason"`
	WinnerUserID    string      `json:"winner_user_id"`
	WinnerPoints    int         `json:"winner_points"`
	Scores          []ScoreView `json:"scores"`
	DurationSeconds int         `json:"duration_seconds"`
}

type PlayerExpelledPayload struct {
	MatchID string `json:"match_id"`
	UserID  string `json:"user_id"`
	Reason  string `json:"reason"`
}

// GameStateView is one player's snapshot of a match, used on reconnect.
type GameStateView struct {
	MatchID             string       `json:"match_id"`
	UserID              string       `json:"user_id"`
	Phase               domain.Phase `json:"phase"`
	Hand                []CardView   `json:"hand"`
	Players             []PlayerView `json:"players"`
	Board               BoardView    `json:"board"`
	PileSizes           []int        `json:"pile_sizes"`
	DiscardSize         int          `json:"discard_size"`
	CurrentTurn         string       `json:"current_turn"`
	TurnNumber          int          `json:"turn_number"`
	RemainingMoves      int          `json:"remaining_moves"`
	MaxCardsPerTurn     int          `json:"max_cards_per_turn"`
	HasDrawnThisTurn    bool         `json:"has_drawn_this_turn"`
	CardsPlayedThisTurn int          `json:"cards_played_this_turn"`
	MainActionTaken     bool         `json:"main_action_taken"`
	RemainingSeconds    int          `json:"remaining_seconds"`
}
