package canvas

import (
	"log/slog"

	"github.com/seedworks/launchpad/internal/domain/idea"
)

// Store provides the idea access the generator needs.
type Store interface {
	Idea(id string) (idea.Idea, bool)
	UpdateIdea(id string, upd idea.Update) bool
}

// Service generates business-model canvases for ideas.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new canvas service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Generate fills the canvas for an idea and flags the idea as generated.
func (s *Service) Generate(ideaID string) (map[BlockKey]string, error) {
	target, ok := s.store.Idea(ideaID)
	if !ok {
		return nil, idea.ErrIdeaNotFound
	}

	content := Generate(target.Title, target.Description)

	generated := true
	s.store.UpdateIdea(ideaID, idea.Update{CanvasGenerated: &generated})
	if s.logger != nil {
		s.logger.Info("canvas generated", "idea_id", ideaID)
	}
	return content, nil
}

// Document generates the canvas and lays it out as a paginated export.
func (s *Service) Document(ideaID string) (Document, error) {
	target, ok := s.store.Idea(ideaID)
	if !ok {
		return Document{}, idea.ErrIdeaNotFound
	}
	content := Generate(target.Title, target.Description)
	return BuildDocument(target.Title, content), nil
}
