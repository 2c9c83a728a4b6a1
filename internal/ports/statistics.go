package ports

import (
	"context"
	"errors"
	"time"
)

// ErrPersistence marks failures of the statistics sink. Adapters wrap their
// storage errors with it so callers can classify them with errors.Is.
var ErrPersistence = errors.New("statistics persistence failed")

// PlayerScore is one line of the final ranking.
type PlayerScore struct {
	UserID   string
	Username string
	Points   int
	Rank     int // 1-based
	IsBot    bool
}

// MatchRecord is the outcome of one finished match.
type MatchRecord struct {
	MatchID  string
	Reason   string
	WinnerID string
	Scores   []PlayerScore
	Turns    int
	Started  time.Time
	Ended    time.Time
}

// StatisticsPort records finished matches.
type StatisticsPort interface {
	// RecordMatch is invoked once per ended match with the final rankings.
	RecordMatch(ctx context.Context, rec MatchRecord) error
}
