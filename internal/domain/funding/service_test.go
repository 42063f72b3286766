package funding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/state"
)

func scoreSequence(scores ...int) func() int {
	i := 0
	return func() int {
		score := scores[i%len(scores)]
		i++
		return score
	}
}

func TestFundingService_InvestReportsOutcome(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	target := store.CreateIdea("Foo", "", idea.StageIdea)
	svc := funding.NewService(store, nil)

	applied := svc.Invest(target.ID, 30)
	require.True(t, applied.Applied)
	require.Equal(t, 70, applied.User.Tokens)
	require.Equal(t, 30, applied.Ideas[0].TotalInvestment)
	require.Len(t, applied.Investments, 1)

	rejected := svc.Invest(target.ID, 80)
	require.False(t, rejected.Applied)
	require.Equal(t, 70, rejected.User.Tokens)
	require.Equal(t, applied.Ideas, rejected.Ideas)
	require.Equal(t, applied.Investments, rejected.Investments)
}

func TestFundingService_LeaderboardRanksByValidationScore(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil,
		state.WithAIScoreSource(scoreSequence(70, 90, 80)))
	low := store.CreateIdea("Low", "", idea.StageIdea)
	high := store.CreateIdea("High", "", idea.StageIdea)
	mid := store.CreateIdea("Mid", "", idea.StageIdea)
	svc := funding.NewService(store, nil)

	entries := svc.Leaderboard()
	require.Len(t, entries, 3)
	require.Equal(t, high.ID, entries[0].Idea.ID)
	require.Equal(t, mid.ID, entries[1].Idea.ID)
	require.Equal(t, low.ID, entries[2].Idea.ID)
	require.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})

	// Crowd votes move the ranking: 21 one-token investments lift the
	// lowest idea's validation score from 70 to 91.
	for range 21 {
		require.True(t, svc.Invest(low.ID, 1).Applied)
	}
	entries = svc.Leaderboard()
	require.Equal(t, low.ID, entries[0].Idea.ID)
	require.Equal(t, 91, entries[0].ValidationScore)
}

func TestFundingService_LeaderboardTiesKeepInsertionOrder(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil,
		state.WithAIScoreSource(func() int { return 75 }))
	first := store.CreateIdea("First", "", idea.StageIdea)
	second := store.CreateIdea("Second", "", idea.StageIdea)
	svc := funding.NewService(store, nil)

	entries := svc.Leaderboard()
	require.Equal(t, first.ID, entries[0].Idea.ID)
	require.Equal(t, second.ID, entries[1].Idea.ID)
}

func TestFundingService_Stats(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	a := store.CreateIdea("A", "", idea.StageIdea)
	b := store.CreateIdea("B", "", idea.StageIdea)
	svc := funding.NewService(store, nil)

	svc.Invest(a.ID, 25)
	svc.Invest(b.ID, 10)
	svc.Invest(b.ID, 5)

	stats := svc.Stats()
	require.Equal(t, 60, stats.Tokens)
	require.Equal(t, 2, stats.IdeaCount)
	require.Equal(t, 40, stats.TotalInvested)
	require.Equal(t, 3, stats.InvestmentCount)
}
