package funding

import (
	"time"

	"github.com/seedworks/launchpad/internal/domain/idea"
)

// Investment is one ledger entry: tokens moved from the current user to an
// idea. Entries are immutable and never deleted, even when the target idea is.
type Investment struct {
	ID         string    `json:"id"`
	InvestorID string    `json:"investor_id"`
	IdeaID     string    `json:"idea_id"`
	Amount     int       `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

// LeaderboardEntry is an idea ranked by validation score.
type LeaderboardEntry struct {
	Idea            idea.Idea `json:"idea"`
	ValidationScore int       `json:"validation_score"`
	Rank            int       `json:"rank"`
}

// Stats summarizes the portfolio for the dashboard.
type Stats struct {
	Tokens          int `json:"tokens"`
	IdeaCount       int `json:"idea_count"`
	TotalInvested   int `json:"total_invested"`
	InvestmentCount int `json:"investment_count"`
}
