package chat

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

// Service drives a chat exchange: the user message is appended immediately,
// the assistant reply follows after a pacing delay. The delay is cosmetic;
// with a zero range the reply is appended inline.
type Service struct {
	store    Store
	logger   *slog.Logger
	minDelay time.Duration
	maxDelay time.Duration
	schedule func(time.Duration, func())
}

// Option configures a chat service.
type Option func(*Service)

// WithReplyDelay sets the pacing delay range for assistant replies.
func WithReplyDelay(min, max time.Duration) Option {
	return func(s *Service) {
		s.minDelay = min
		s.maxDelay = max
	}
}

// WithScheduler replaces the timer used to defer assistant replies.
func WithScheduler(schedule func(time.Duration, func())) Option {
	return func(s *Service) {
		s.schedule = schedule
	}
}

// NewService creates a new chat service.
func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: logger,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send appends the user message and arranges the assistant reply. It returns
// the stored user message; the reply lands in the log once the delay elapses.
func (s *Service) Send(content string) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, ErrEmptyMessage
	}

	userMsg := s.store.AppendChatMessage(SenderUser, content)
	reply := Respond(content)

	delay := s.replyDelay()
	if delay <= 0 {
		s.store.AppendChatMessage(SenderAssistant, reply)
		return userMsg, nil
	}

	s.schedule(delay, func() {
		s.store.AppendChatMessage(SenderAssistant, reply)
		if s.logger != nil {
			s.logger.Debug("assistant reply appended", "delay", delay)
		}
	})
	return userMsg, nil
}

// History returns the chat log in chronological order.
func (s *Service) History() []Message {
	return s.store.ChatMessages()
}

func (s *Service) replyDelay() time.Duration {
	if s.maxDelay <= s.minDelay {
		return s.minDelay
	}
	return s.minDelay + rand.N(s.maxDelay-s.minDelay)
}
