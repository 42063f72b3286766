package state

import (
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/seedworks/launchpad/internal/domain/account"
	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/domain/recruit"
)

// AI scores are assigned uniformly at random in [60,100] at idea creation.
const (
	aiScoreMin = 60
	aiScoreMax = 100
)

// Seed configures the current user for a fresh store.
type Seed struct {
	UserName string
	Tokens   int
}

// Store owns the current state snapshot. Mutators build the next snapshot
// through a reducer and swap it in under the lock, so the whole transition is
// observed or none of it is. Rejected mutations leave the snapshot untouched
// and report false; no error values cross this boundary.
type Store struct {
	mu     sync.Mutex
	state  State
	logger *slog.Logger

	now     func() time.Time
	newID   func() string
	aiScore func() int
}

// Option configures a store.
type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource replaces the identifier generator.
func WithIDSource(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithAIScoreSource replaces the random AI score source, mainly for tests.
func WithAIScoreSource(score func() int) Option {
	return func(s *Store) { s.aiScore = score }
}

// New creates a store seeded with the current user and the assistant's
// welcome message.
func New(seed Seed, logger *slog.Logger, opts ...Option) *Store {
	if seed.UserName == "" {
		seed.UserName = "John Doe"
	}
	s := &Store{
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
		aiScore: func() int { return aiScoreMin + rand.IntN(aiScoreMax-aiScoreMin+1) },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = State{
		User: account.User{
			ID:     s.newID(),
			Name:   seed.UserName,
			Tokens: seed.Tokens,
		},
		ChatMessages: []chat.Message{{
			ID:        s.newID(),
			Sender:    chat.SenderAssistant,
			Content:   chat.WelcomeMessage,
			Timestamp: s.now(),
		}},
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// User returns the current user.
func (s *Store) User() account.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	user := s.state.User
	user.Ideas = append([]string(nil), user.Ideas...)
	user.Investments = append([]string(nil), user.Investments...)
	return user
}

// CreateIdea appends a new idea owned by the current user. The AI score is
// drawn from the score source and fixed for the idea's lifetime.
func (s *Store) CreateIdea(title, description string, stage idea.Stage) idea.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, created := reduceCreateIdea(s.state, s.newID(), s.now(), title, description, stage, s.aiScore())
	s.state = next
	return created
}

// UpdateIdea merges the given fields into the matching idea. Unknown ids are
// a no-op.
func (s *Store) UpdateIdea(id string, upd idea.Update) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := reduceUpdateIdea(s.state, id, upd)
	if !changed {
		s.debug("update idea ignored", "id", id)
		return false
	}
	s.state = next
	return true
}

// DeleteIdea removes an idea without cascading to dependent records.
func (s *Store) DeleteIdea(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := reduceDeleteIdea(s.state, id)
	if !changed {
		s.debug("delete idea ignored", "id", id)
		return false
	}
	s.state = next
	return true
}

// Idea fetches an idea by ID.
func (s *Store) Idea(id string) (idea.Idea, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.state.ideaIndex(id)
	if i < 0 {
		return idea.Idea{}, false
	}
	return s.state.Ideas[i], true
}

// Ideas returns all ideas in insertion order.
func (s *Store) Ideas() []idea.Idea {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]idea.Idea(nil), s.state.Ideas...)
}

// Invest applies the four-way investment transition atomically. Non-positive
// amounts, insufficient balance, and unknown ideas reject the whole mutation.
func (s *Store) Invest(ideaID string, amount int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, applied := reduceInvest(s.state, s.newID(), s.now(), ideaID, amount)
	if !applied {
		s.debug("investment rejected", "idea_id", ideaID, "amount", amount, "tokens", s.state.User.Tokens)
		return false
	}
	s.state = next
	return true
}

// Investments returns the full ledger in insertion order.
func (s *Store) Investments() []funding.Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]funding.Investment(nil), s.state.Investments...)
}

// AppendChatMessage appends a message with a fresh id and timestamp.
func (s *Store) AppendChatMessage(sender chat.Sender, content string) chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, msg := reduceAppendMessage(s.state, s.newID(), s.now(), sender, content)
	s.state = next
	return msg
}

// ChatMessages returns the chat log in chronological order.
func (s *Store) ChatMessages() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]chat.Message(nil), s.state.ChatMessages...)
}

// CreatePitchSession appends a new session at question zero and returns its
// identifier. Idea existence is not checked.
func (s *Store) CreatePitchSession(ideaID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.newID()
	s.state = reduceCreateSession(s.state, id, s.now(), ideaID)
	return id
}

// AdvancePitchSession appends one scored answer and bumps the question index.
// Unknown and completed sessions are a no-op.
func (s *Store) AdvancePitchSession(sessionID, answer string, score int, feedback string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := reduceAdvanceSession(s.state, sessionID, answer, score, feedback)
	if !changed {
		s.debug("advance session ignored", "session_id", sessionID)
		return false
	}
	s.state = next
	return true
}

// PitchSession fetches a session by ID.
func (s *Store) PitchSession(id string) (pitch.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.state.sessionIndex(id)
	if i < 0 {
		return pitch.Session{}, false
	}
	sess := s.state.PitchSessions[i]
	sess.Answers = append([]string(nil), sess.Answers...)
	sess.Scores = append([]int(nil), sess.Scores...)
	sess.Feedback = append([]string(nil), sess.Feedback...)
	return sess, true
}

// PitchSessions returns all sessions in insertion order.
func (s *Store) PitchSessions() []pitch.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone().PitchSessions
}

// CreateRecruitmentPost appends a post with an empty application list.
func (s *Store) CreateRecruitmentPost(ideaID, title, description string, skills []string) recruit.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, post := reduceCreatePost(s.state, s.newID(), s.now(), ideaID, title, description, skills)
	s.state = next
	return post
}

// SubmitApplication appends an application to the matching post. Unknown
// posts are a no-op.
func (s *Store) SubmitApplication(postID, applicantName, email, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := reduceSubmitApplication(s.state, s.newID(), s.now(), postID, applicantName, email, message)
	if !changed {
		s.debug("application ignored", "post_id", postID)
		return false
	}
	s.state = next
	return true
}

// RecruitmentPost fetches a post by ID.
func (s *Store) RecruitmentPost(id string) (recruit.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.state.postIndex(id)
	if i < 0 {
		return recruit.Post{}, false
	}
	post := s.state.RecruitmentPosts[i]
	post.Skills = append([]string(nil), post.Skills...)
	post.Applications = append([]recruit.Application(nil), post.Applications...)
	return post, true
}

// RecruitmentPosts returns all posts in insertion order.
func (s *Store) RecruitmentPosts() []recruit.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone().RecruitmentPosts
}

func (s *Store) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
