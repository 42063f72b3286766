package pitch

// Store provides state access for pitch sessions. Advance appends one
// answer/score/feedback triple and bumps the question index, or leaves the
// state untouched when the session is unknown or already completed.
type Store interface {
	CreatePitchSession(ideaID string) string
	AdvancePitchSession(sessionID, answer string, score int, feedback string) bool
	PitchSession(id string) (Session, bool)
	PitchSessions() []Session
}
