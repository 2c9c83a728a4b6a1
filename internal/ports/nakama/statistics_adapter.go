package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"archsdinos/internal/ports"
)

// statsBackend is the part of runtime.NakamaModule the statistics adapter uses.
type statsBackend interface {
	LeaderboardRecordWrite(ctx context.Context, id, ownerID, username string, score, subscore int64, metadata map[string]interface{}, overrideOperator *int) (*api.LeaderboardRecord, error)
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// PlayerTotals is the per-user storage object kept next to the leaderboard.
type PlayerTotals struct {
	Games       int    `json:"games"`
	Wins        int    `json:"wins"`
	TotalPoints int    `json:"total_points"`
	LastMatchID string `json:"last_match_id,omitempty"`
}

// NakamaStatisticsAdapter implements ports.StatisticsPort with Nakama
// leaderboards and storage. Bots are never recorded.
type NakamaStatisticsAdapter struct {
	nk statsBackend
}

// NewNakamaStatisticsAdapter creates a new statistics adapter.
func NewNakamaStatisticsAdapter(nk statsBackend) *NakamaStatisticsAdapter {
	return &NakamaStatisticsAdapter{nk: nk}
}

// RecordMatch bumps each human's totals and then adds their points to the
// leaderboard. A player whose totals already carry this match is skipped, so
// a retried record never double counts.
func (a *NakamaStatisticsAdapter) RecordMatch(ctx context.Context, rec ports.MatchRecord) error {
	for _, score := range rec.Scores {
		if score.IsBot {
			continue
		}
		err := a.bumpTotals(ctx, rec, score)
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			err = a.bumpTotals(ctx, rec, score)
		}
		if errors.Is(err, errAlreadyRecorded) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: totals for %s: %w", ports.ErrPersistence, score.UserID, err)
		}
		metadata := map[string]interface{}{
			"match_id": rec.MatchID,
			"reason":   rec.Reason,
			"rank":     score.Rank,
		}
		if _, err := a.nk.LeaderboardRecordWrite(ctx, LeaderboardPoints, score.UserID, score.Username, int64(score.Points), 0, metadata, nil); err != nil {
			return fmt.Errorf("%w: leaderboard write for %s: %w", ports.ErrPersistence, score.UserID, err)
		}
	}
	return nil
}

var errAlreadyRecorded = errors.New("match already recorded")

func (a *NakamaStatisticsAdapter) bumpTotals(ctx context.Context, rec ports.MatchRecord, score ports.PlayerScore) error {
	totals, version, err := a.Totals(ctx, score.UserID)
	if err != nil {
		return err
	}
	if rec.MatchID != "" && totals.LastMatchID == rec.MatchID {
		return errAlreadyRecorded
	}
	if version == "" {
		version = "*"
	}
	totals.Games++
	totals.TotalPoints += score.Points
	if rec.WinnerID == score.UserID {
		totals.Wins++
	}
	totals.LastMatchID = rec.MatchID

	value, err := json.Marshal(totals)
	if err != nil {
		return err
	}
	_, err = a.nk.StorageWrite(ctx, []*runtime.StorageWrite{{
		Collection:      StatsCollection,
		Key:             StatsKey,
		UserID:          score.UserID,
		Value:           string(value),
		Version:         version,
		PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
		PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
	}})
	return err
}

// Totals reads userID's totals and the storage version, zero valued when
// nothing was recorded yet.
func (a *NakamaStatisticsAdapter) Totals(ctx context.Context, userID string) (PlayerTotals, string, error) {
	objects, err := a.nk.StorageRead(ctx, []*runtime.StorageRead{{
		Collection: StatsCollection,
		Key:        StatsKey,
		UserID:     userID,
	}})
	if err != nil {
		return PlayerTotals{}, "", err
	}
	if len(objects) == 0 {
		return PlayerTotals{}, "", nil
	}
	var totals PlayerTotals
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &totals); err != nil {
		return PlayerTotals{}, "", fmt.Errorf("failed to unmarshal totals: %w", err)
	}
	return totals, objects[0].GetVersion(), nil
}

var _ ports.StatisticsPort = (*NakamaStatisticsAdapter)(nil)
