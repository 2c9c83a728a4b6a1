package nakama

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"archsdinos/internal/app"
	"archsdinos/internal/domain"
	pb "archsdinos/proto"
)

func toProtoCard(c app.CardView) *pb.Card {
	return &pb.Card{
		Id:       int32(c.ID),
		Category: c.Category,
		Part:     c.Part,
		Army:     c.Army,
		Power:    int32(c.Power),
	}
}

func toProtoCards(cards []app.CardView) []*pb.Card {
	return lo.Map(cards, func(c app.CardView, _ int) *pb.Card { return toProtoCard(c) })
}

func toProtoDino(d app.DinoView) *pb.Dino {
	return &pb.Dino{
		HeadCardId: int32(d.HeadCardID),
		Army:       d.Army,
		Cards:      toProtoCards(d.Cards),
		Power:      int32(d.Power),
		Complete:   d.Complete,
	}
}

// toProtoBoard lists the armies in board order.
func toProtoBoard(board app.BoardView) []*pb.ArmyState {
	out := make([]*pb.ArmyState, 0, len(domain.ArmyTypes))
	for _, army := range domain.ArmyTypes {
		view, ok := board[army.String()]
		if !ok {
			continue
		}
		out = append(out, &pb.ArmyState{
			Army:  army.String(),
			Archs: toProtoCards(view.Archs),
			Power: int32(view.Power),
		})
	}
	return out
}

func toProtoPlayers(players []app.PlayerView) []*pb.PlayerState {
	return lo.Map(players, func(p app.PlayerView, _ int) *pb.PlayerState {
		return &pb.PlayerState{
			UserId:    p.UserID,
			Username:  p.Username,
			TurnOrder: int32(p.TurnOrder),
			HandSize:  int32(p.HandSize),
			Dinos:     lo.Map(p.Dinos, func(d app.DinoView, _ int) *pb.Dino { return toProtoDino(d) }),
			Points:    int32(p.Points),
			Connected: p.Connected,
			IsBot:     p.IsBot,
		}
	})
}

func toProtoInts(values []int) []int32 {
	return lo.Map(values, func(v int, _ int) int32 { return int32(v) })
}

func toProtoGameState(v app.GameStateView) *pb.GameStateSnapshot {
	return &pb.GameStateSnapshot{
		MatchId:             v.MatchID,
		UserId:              v.UserID,
		Phase:               string(v.Phase),
		Hand:                toProtoCards(v.Hand),
		Players:             toProtoPlayers(v.Players),
		Board:               toProtoBoard(v.Board),
		PileSizes:           toProtoInts(v.PileSizes),
		DiscardSize:         int32(v.DiscardSize),
		CurrentTurn:         v.CurrentTurn,
		TurnNumber:          int32(v.TurnNumber),
		RemainingMoves:      int32(v.RemainingMoves),
		MaxCardsPerTurn:     int32(v.MaxCardsPerTurn),
		HasDrawnThisTurn:    v.HasDrawnThisTurn,
		CardsPlayedThisTurn: int32(v.CardsPlayedThisTurn),
		MainActionTaken:     v.MainActionTaken,
		RemainingSeconds:    int32(v.RemainingSeconds),
	}
}

// toProtoEvent converts an app event payload into its wire message.
func toProtoEvent(payload any) (proto.Message, error) {
	switch p := payload.(type) {
	case app.GameInitializedPayload:
		return &pb.GameInitializedEvent{
			MatchId:   p.MatchID,
			UserId:    p.UserID,
			Hand:      toProtoCards(p.Hand),
			Players:   toProtoPlayers(p.Players),
			Board:     toProtoBoard(p.Board),
			PileSizes: toProtoInts(p.PileSizes),
		}, nil
	case app.GameStartedPayload:
		return &pb.GameStartedEvent{
			MatchId:          p.MatchID,
			FirstTurnUserId:  p.FirstTurnUserID,
			TurnNumber:       int32(p.TurnNumber),
			MovesPerTurn:     int32(p.MovesPerTurn),
			RemainingSeconds: int32(p.RemainingSeconds),
		}, nil
	case app.TurnChangedPayload:
		return &pb.TurnChangedEvent{
			MatchId:        p.MatchID,
			PreviousUserId: p.PreviousUserID,
			CurrentUserId:  p.CurrentUserID,
			TurnNumber:     int32(p.TurnNumber),
			RemainingMoves: int32(p.RemainingMoves),
			PilesRefilled:  p.PilesRefilled,
		}, nil
	case app.CardDrawnPayload:
		event := &pb.CardDrawnEvent{
			MatchId:   p.MatchID,
			UserId:    p.UserID,
			Pile:      int32(p.Pile),
			ToBoard:   p.ToBoard,
			PileSizes: toProtoInts(p.PileSizes),
		}
		if p.Card != nil {
			event.Card = toProtoCard(*p.Card)
		}
		return event, nil
	case app.DinoHeadPlayedPayload:
		return &pb.DinoHeadPlayedEvent{
			MatchId: p.MatchID,
			UserId:  p.UserID,
			Dino:    toProtoDino(p.Dino),
		}, nil
	case app.BodyPartAttachedPayload:
		return &pb.BodyPartAttachedEvent{
			MatchId:    p.MatchID,
			UserId:     p.UserID,
			HeadCardId: int32(p.HeadCardID),
			Card:       toProtoCard(p.Card),
			Dino:       toProtoDino(p.Dino),
		}, nil
	case app.ArchArmyProvokedPayload:
		return &pb.ArchArmyProvokedEvent{
			MatchId:   p.MatchID,
			UserId:    p.UserID,
			Army:      p.Army,
			ArchPower: int32(p.ArchPower),
		}, nil
	case app.BattleResolvedPayload:
		users := lo.Keys(p.PlayerPowers)
		sort.Strings(users)
		return &pb.BattleResolvedEvent{
			MatchId:   p.MatchID,
			Army:      p.Army,
			ArchPower: int32(p.ArchPower),
			PlayerPowers: lo.Map(users, func(id string, _ int) *pb.PlayerPower {
				return &pb.PlayerPower{UserId: id, Power: int32(p.PlayerPowers[id])}
			}),
			DinosWon:      p.DinosWon,
			WinnerUserId:  p.WinnerUserID,
			WinnerPower:   int32(p.WinnerPower),
			PointsAwarded: int32(p.PointsAwarded),
		}, nil
	case app.GameEndedPayload:
		return &pb.GameEndedEvent{
			MatchId:      p.MatchID,
			Reason:       p.Reason,
			WinnerUserId: p.WinnerUserID,
			WinnerPoints: int32(p.WinnerPoints),
			Scores: lo.Map(p.Scores, func(s app.ScoreView, _ int) *pb.Score {
				return &pb.Score{UserId: s.UserID, Username: s.Username, Points: int32(s.Points), Rank: int32(s.Rank)}
			}),
			DurationSeconds: int32(p.DurationSeconds),
		}, nil
	case app.PlayerExpelledPayload:
		return &pb.PlayerExpelledEvent{
			MatchId: p.MatchID,
			UserId:  p.UserID,
			Reason:  p.Reason,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported payload %T", payload)
	}
}
