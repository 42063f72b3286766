package recruit

import (
	"log/slog"
	"strings"
)

// Service handles recruitment posts and applications.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new recruitment service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// CreateRequest defines post creation inputs.
type CreateRequest struct {
	IdeaID      string
	Title       string
	Description string
	Skills      []string
}

// CreatePost publishes a recruitment listing with an empty application list.
func (s *Service) CreatePost(req CreateRequest) (Post, error) {
	if strings.TrimSpace(req.Title) == "" {
		return Post{}, ErrInvalidInput
	}
	post := s.store.CreateRecruitmentPost(req.IdeaID, req.Title, req.Description, req.Skills)
	if s.logger != nil {
		s.logger.Info("recruitment post created", "id", post.ID, "idea_id", post.IdeaID)
	}
	return post, nil
}

// Apply appends an application to a post. Applying to an unknown post is a
// silent no-op in the store; the service surfaces it for the transport.
func (s *Service) Apply(postID, applicantName, email, message string) (Post, error) {
	if !s.store.SubmitApplication(postID, applicantName, email, message) {
		return Post{}, ErrPostNotFound
	}
	post, _ := s.store.RecruitmentPost(postID)
	return post, nil
}

// Get fetches a post by ID.
func (s *Service) Get(id string) (Post, error) {
	post, ok := s.store.RecruitmentPost(id)
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return post, nil
}

// List returns all posts in insertion order.
func (s *Service) List() []Post {
	return s.store.RecruitmentPosts()
}
