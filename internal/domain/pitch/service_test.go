package pitch_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/state"
	"github.com/seedworks/launchpad/internal/state/mocks"
)

func TestPitchService_FullSession(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := pitch.NewService(store, nil)

	sessionID := svc.Start("idea-1")
	require.NotEmpty(t, sessionID)

	answer := shortWords(60) // scores 65 on the rubric
	var sess pitch.Session
	for i := range pitch.QuestionCount() {
		var err error
		sess, err = svc.Submit(sessionID, answer)
		require.NoError(t, err)
		require.Equal(t, i+1, sess.CurrentQuestion)
		require.Len(t, sess.Answers, i+1)
		require.Len(t, sess.Scores, i+1)
		require.Len(t, sess.Feedback, i+1)
	}

	require.True(t, sess.Completed)
	require.Equal(t, 65.0, sess.Score)

	_, err := svc.Submit(sessionID, answer)
	require.ErrorIs(t, err, pitch.ErrSessionCompleted)
}

func TestPitchService_AverageOfMixedScores(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := pitch.NewService(store, nil)
	sessionID := svc.Start("idea-1")

	answers := []string{
		shortWords(60),                    // 65
		shortWords(59) + " 7",             // 80
		"we will do things",               // 50
		"for example our pilot",           // 60
		"we have 3 customers",             // 65
		strings.Repeat("metric 42 ", 110), // 100
	}
	var sess pitch.Session
	for _, a := range answers {
		var err error
		sess, err = svc.Submit(sessionID, a)
		require.NoError(t, err)
	}

	require.True(t, sess.Completed)
	require.InDelta(t, 70.0, sess.Score, 0.01) // (65+80+50+60+65+100)/6
}

func TestPitchService_SubmitValidation(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := pitch.NewService(store, nil)

	_, err := svc.Submit("missing", "an answer")
	require.ErrorIs(t, err, pitch.ErrSessionNotFound)

	sessionID := svc.Start("idea-1")
	_, err = svc.Submit(sessionID, "  ")
	require.ErrorIs(t, err, pitch.ErrEmptyAnswer)
}

func TestPitchService_RestartIsANewSession(t *testing.T) {
	store := state.New(state.Seed{Tokens: 100}, nil)
	svc := pitch.NewService(store, nil)

	first := svc.Start("idea-1")
	_, err := svc.Submit(first, shortWords(60))
	require.NoError(t, err)

	second := svc.Start("idea-1")
	require.NotEqual(t, first, second)

	fresh, err := svc.Get(second)
	require.NoError(t, err)
	require.Equal(t, 0, fresh.CurrentQuestion)
	require.Empty(t, fresh.Answers)

	// The abandoned session keeps its progress but is otherwise inert.
	abandoned, err := svc.Get(first)
	require.NoError(t, err)
	require.Equal(t, 1, abandoned.CurrentQuestion)
}

func TestPitchService_ScoresAnswerBeforeAdvancing(t *testing.T) {
	storeMock := &mocks.PitchStore{}
	storeMock.On("PitchSession", "s1").
		Return(pitch.Session{ID: "s1", IdeaID: "idea-1"}, true)
	storeMock.On("AdvancePitchSession", "s1", "we have 3 customers", 65,
		"Decent answer! Try to be more specific and provide concrete evidence.").
		Return(true)

	svc := pitch.NewService(storeMock, nil)
	_, err := svc.Submit("s1", "we have 3 customers")
	require.NoError(t, err)
	storeMock.AssertExpectations(t)
}

func TestQuestions(t *testing.T) {
	qs := pitch.Questions()
	require.Len(t, qs, 6)
	require.Equal(t, "What problem does your startup solve and how big is this problem?", qs[0].Question)
	require.Equal(t, "How much funding do you need and how will you use it?", qs[5].Question)
	for i, q := range qs {
		require.Equal(t, i+1, q.ID)
		require.NotEmpty(t, q.Tips)
	}
}
