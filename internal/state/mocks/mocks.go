// Package mocks provides testify doubles for the domain Store interfaces,
// for service tests that need to observe or script store behavior.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/pitch"
)

// ChatStore is a mock for chat.Store.
type ChatStore struct {
	mock.Mock
}

func (m *ChatStore) AppendChatMessage(sender chat.Sender, content string) chat.Message {
	args := m.Called(sender, content)
	return args.Get(0).(chat.Message)
}

func (m *ChatStore) ChatMessages() []chat.Message {
	args := m.Called()
	if msgs, ok := args.Get(0).([]chat.Message); ok {
		return msgs
	}
	return nil
}

// PitchStore is a mock for pitch.Store.
type PitchStore struct {
	mock.Mock
}

func (m *PitchStore) CreatePitchSession(ideaID string) string {
	args := m.Called(ideaID)
	return args.String(0)
}

func (m *PitchStore) AdvancePitchSession(sessionID, answer string, score int, feedback string) bool {
	args := m.Called(sessionID, answer, score, feedback)
	return args.Bool(0)
}

func (m *PitchStore) PitchSession(id string) (pitch.Session, bool) {
	args := m.Called(id)
	return args.Get(0).(pitch.Session), args.Bool(1)
}

func (m *PitchStore) PitchSessions() []pitch.Session {
	args := m.Called()
	if sessions, ok := args.Get(0).([]pitch.Session); ok {
		return sessions
	}
	return nil
}
