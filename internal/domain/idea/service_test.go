package idea_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/state"
)

func TestIdeaService_Create(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil,
		state.WithAIScoreSource(func() int { return 72 }))
	svc := idea.NewService(store, nil)

	created, err := svc.Create(idea.CreateRequest{
		Title:       "Compost Router",
		Description: "Neighborhood compost logistics",
		Stage:       idea.StageTesting,
	})
	require.NoError(t, err)
	require.Equal(t, 72, created.AIScore)
	require.Equal(t, idea.StageTesting, created.Stage)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestIdeaService_CreateDefaultsStage(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := idea.NewService(store, nil)

	created, err := svc.Create(idea.CreateRequest{Title: "Untitled stage"})
	require.NoError(t, err)
	require.Equal(t, idea.StageIdea, created.Stage)
}

func TestIdeaService_CreateValidation(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := idea.NewService(store, nil)

	_, err := svc.Create(idea.CreateRequest{Title: "   "})
	require.ErrorIs(t, err, idea.ErrInvalidInput)
	require.Empty(t, svc.List())
}

func TestIdeaService_UpdateAndDelete(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := idea.NewService(store, nil)

	created, err := svc.Create(idea.CreateRequest{Title: "Keep"})
	require.NoError(t, err)

	stage := idea.StageLaunch
	ideas := svc.Update(created.ID, idea.Update{Stage: &stage})
	require.Equal(t, idea.StageLaunch, ideas[0].Stage)

	// Unknown ids fall through without touching anything.
	ideas = svc.Update("missing", idea.Update{Stage: &stage})
	require.Len(t, ideas, 1)

	ideas = svc.Delete(created.ID)
	require.Empty(t, ideas)

	_, err = svc.Get(created.ID)
	require.ErrorIs(t, err, idea.ErrIdeaNotFound)
}

func TestValidationScore(t *testing.T) {
	i := idea.Idea{AIScore: 80, CrowdVotes: 7}
	require.Equal(t, 87, i.ValidationScore())
}
