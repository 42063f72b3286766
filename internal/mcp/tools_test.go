package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/state"
)

func newTestServices(t *testing.T) Services {
	t.Helper()
	store := state.New(state.Seed{Tokens: 100}, nil,
		state.WithAIScoreSource(func() int { return 72 }))
	return Services{
		Ideas:   idea.NewService(store, nil),
		Funding: funding.NewService(store, nil),
		Pitch:   pitch.NewService(store, nil),
	}
}

func TestCreateIdeaHandler(t *testing.T) {
	svcs := newTestServices(t)
	handler := createIdeaHandler(svcs.Ideas)

	_, created, err := handler(context.Background(), nil, createIdeaInput{
		Title: "Solar Drones",
		Stage: "prototype",
	})
	require.NoError(t, err)
	require.Equal(t, 72, created.AIScore)
	require.Equal(t, idea.StagePrototype, created.Stage)

	_, _, err = handler(context.Background(), nil, createIdeaInput{Title: "  "})
	require.ErrorIs(t, err, idea.ErrInvalidInput)
}

func TestInvestHandler(t *testing.T) {
	svcs := newTestServices(t)
	created, err := svcs.Ideas.Create(idea.CreateRequest{Title: "Foo"})
	require.NoError(t, err)

	handler := investHandler(svcs.Funding)
	_, result, err := handler(context.Background(), nil, investInput{IdeaID: created.ID, Amount: 30})
	require.NoError(t, err)
	require.True(t, result.Applied)
	require.Equal(t, 70, result.User.Tokens)

	// Rejection is an outcome, not a tool error.
	_, result, err = handler(context.Background(), nil, investInput{IdeaID: created.ID, Amount: 500})
	require.NoError(t, err)
	require.False(t, result.Applied)
}

func TestPitchHandlers(t *testing.T) {
	svcs := newTestServices(t)

	_, started, err := startPitchHandler(svcs.Pitch)(context.Background(), nil, startPitchInput{IdeaID: "idea-1"})
	require.NoError(t, err)
	require.NotEmpty(t, started.SessionID)
	require.Len(t, started.Questions, pitch.QuestionCount())

	submit := submitAnswerHandler(svcs.Pitch)
	_, sess, err := submit(context.Background(), nil, submitAnswerInput{
		SessionID: started.SessionID,
		Answer:    "we have 3 customers",
	})
	require.NoError(t, err)
	require.Equal(t, 1, sess.CurrentQuestion)
	require.Equal(t, []int{65}, sess.Scores)

	_, _, err = submit(context.Background(), nil, submitAnswerInput{SessionID: "missing", Answer: "x"})
	require.ErrorIs(t, err, pitch.ErrSessionNotFound)
}
