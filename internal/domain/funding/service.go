package funding

import (
	"log/slog"
	"sort"

	"github.com/seedworks/launchpad/internal/domain/account"
	"github.com/seedworks/launchpad/internal/domain/idea"
)

// Service handles the token investment ledger and leaderboard.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new funding service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// InvestResult is the readable state returned after an investment attempt.
type InvestResult struct {
	Applied     bool         `json:"applied"`
	User        account.User `json:"user"`
	Ideas       []idea.Idea  `json:"ideas"`
	Investments []Investment `json:"investments"`
}

// Invest moves tokens from the current user to an idea. Insufficient balance,
// a non-positive amount, or an unknown idea leaves the store untouched.
func (s *Service) Invest(ideaID string, amount int) InvestResult {
	applied := s.store.Invest(ideaID, amount)
	if !applied && s.logger != nil {
		s.logger.Debug("investment rejected", "idea_id", ideaID, "amount", amount)
	}
	if applied && s.logger != nil {
		s.logger.Info("investment recorded", "idea_id", ideaID, "amount", amount)
	}
	return InvestResult{
		Applied:     applied,
		User:        s.store.User(),
		Ideas:       s.store.Ideas(),
		Investments: s.store.Investments(),
	}
}

// Leaderboard ranks all ideas by validation score, highest first. Ties keep
// insertion order.
func (s *Service) Leaderboard() []LeaderboardEntry {
	ideas := s.store.Ideas()
	entries := make([]LeaderboardEntry, 0, len(ideas))
	for _, i := range ideas {
		entries = append(entries, LeaderboardEntry{
			Idea:            i,
			ValidationScore: i.ValidationScore(),
		})
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].ValidationScore > entries[b].ValidationScore
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// Stats aggregates portfolio numbers for the dashboard.
func (s *Service) Stats() Stats {
	user := s.store.User()
	total := 0
	ideas := s.store.Ideas()
	for _, i := range ideas {
		total += i.TotalInvestment
	}
	return Stats{
		Tokens:          user.Tokens,
		IdeaCount:       len(ideas),
		TotalInvested:   total,
		InvestmentCount: len(s.store.Investments()),
	}
}

// List returns the full ledger in insertion order.
func (s *Service) List() []Investment {
	return s.store.Investments()
}

// User returns the current user.
func (s *Service) User() account.User {
	return s.store.User()
}
