package pitch

import (
	"log/slog"
	"strings"
)

// Service runs scripted pitch-practice sessions: NotStarted, then one answer
// per question, then Completed. Completed is terminal; practicing again means
// starting a fresh session.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new pitch service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Start opens a new session at question zero and returns its identifier.
// Idea existence is not checked; abandoned sessions hold no resources.
func (s *Service) Start(ideaID string) string {
	id := s.store.CreatePitchSession(ideaID)
	if s.logger != nil {
		s.logger.Info("pitch session started", "session_id", id, "idea_id", ideaID)
	}
	return id
}

// Submit scores one answer and advances the session. The returned session
// reflects the new index, running average, and completion flag.
func (s *Service) Submit(sessionID, answer string) (Session, error) {
	if strings.TrimSpace(answer) == "" {
		return Session{}, ErrEmptyAnswer
	}
	current, ok := s.store.PitchSession(sessionID)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if current.Completed {
		return Session{}, ErrSessionCompleted
	}

	score, feedback := ScoreAnswer(answer)
	s.store.AdvancePitchSession(sessionID, answer, score, feedback)

	advanced, _ := s.store.PitchSession(sessionID)
	if advanced.Completed && s.logger != nil {
		s.logger.Info("pitch session completed", "session_id", sessionID, "score", advanced.Score)
	}
	return advanced, nil
}

// Get fetches a session by ID.
func (s *Service) Get(id string) (Session, error) {
	sess, ok := s.store.PitchSession(id)
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return sess, nil
}

// List returns all sessions in insertion order.
func (s *Service) List() []Session {
	return s.store.PitchSessions()
}
