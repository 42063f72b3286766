package idea

import (
	"log/slog"
	"strings"
)

// Service handles idea operations.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new idea service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateRequest defines idea creation inputs.
type CreateRequest struct {
	Title       string
	Description string
	Stage       Stage
}

// Create records a new idea owned by the current user. The AI score is
// assigned by the store at creation and fixed thereafter.
func (s *Service) Create(req CreateRequest) (Idea, error) {
	if strings.TrimSpace(req.Title) == "" {
		return Idea{}, ErrInvalidInput
	}
	stage := req.Stage
	if stage == "" {
		stage = StageIdea
	}
	created := s.store.CreateIdea(req.Title, req.Description, stage)
	if s.logger != nil {
		s.logger.Info("idea created", "id", created.ID, "title", created.Title, "ai_score", created.AIScore)
	}
	return created, nil
}

// Update merges the given fields into the matching idea. Updating an unknown
// id is a no-op, mirroring the store's silent-rejection contract.
func (s *Service) Update(id string, upd Update) []Idea {
	if !s.store.UpdateIdea(id, upd) && s.logger != nil {
		s.logger.Debug("update ignored", "id", id)
	}
	return s.store.Ideas()
}

// Delete removes an idea. Dependent investments, pitch sessions, and
// recruitment posts are kept as historical records.
func (s *Service) Delete(id string) []Idea {
	if !s.store.DeleteIdea(id) && s.logger != nil {
		s.logger.Debug("delete ignored", "id", id)
	}
	return s.store.Ideas()
}

// Get fetches an idea by ID.
func (s *Service) Get(id string) (Idea, error) {
	found, ok := s.store.Idea(id)
	if !ok {
		return Idea{}, ErrIdeaNotFound
	}
	return found, nil
}

// List returns all ideas in insertion order.
func (s *Service) List() []Idea {
	return s.store.Ideas()
}
