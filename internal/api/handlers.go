package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seedworks/launchpad/internal/domain/canvas"
	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/domain/recruit"
)

// Handler adapts HTTP requests to the domain services.
type Handler struct {
	ideas   *idea.Service
	funding *funding.Service
	chat    *chat.Service
	pitch   *pitch.Service
	canvas  *canvas.Service
	recruit *recruit.Service
	logger  *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	ideas *idea.Service,
	fundingSvc *funding.Service,
	chatSvc *chat.Service,
	pitchSvc *pitch.Service,
	canvasSvc *canvas.Service,
	recruitSvc *recruit.Service,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		ideas:   ideas,
		funding: fundingSvc,
		chat:    chatSvc,
		pitch:   pitchSvc,
		canvas:  canvasSvc,
		recruit: recruitSvc,
		logger:  logger,
	}
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.funding.User())
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.funding.Stats())
}

func (h *Handler) ListIdeas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ideas.List())
}

type createIdeaRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Stage       idea.Stage `json:"stage"`
}

func (h *Handler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req createIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.ideas.Create(idea.CreateRequest{
		Title:       req.Title,
		Description: req.Description,
		Stage:       req.Stage,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

type updateIdeaRequest struct {
	Title           *string     `json:"title"`
	Description     *string     `json:"description"`
	Stage           *idea.Stage `json:"stage"`
	CanvasGenerated *bool       `json:"canvas_generated"`
}

func (h *Handler) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	var req updateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	ideas := h.ideas.Update(chi.URLParam(r, "ideaID"), idea.Update{
		Title:           req.Title,
		Description:     req.Description,
		Stage:           req.Stage,
		CanvasGenerated: req.CanvasGenerated,
	})
	writeJSON(w, http.StatusOK, ideas)
}

func (h *Handler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ideas.Delete(chi.URLParam(r, "ideaID")))
}

func (h *Handler) ListInvestments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.funding.List())
}

type investRequest struct {
	IdeaID string `json:"idea_id"`
	Amount int    `json:"amount"`
}

// Invest returns the updated readable state whether or not the investment
// applied; a rejected attempt echoes the unchanged state with applied=false.
func (h *Handler) Invest(w http.ResponseWriter, r *http.Request) {
	var req investRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.funding.Invest(req.IdeaID, req.Amount))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.funding.Leaderboard())
}

func (h *Handler) ListChatMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.chat.History())
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

func (h *Handler) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if _, err := h.chat.Send(req.Content); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, h.chat.History())
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pitch.Questions())
}

func (h *Handler) ListPitchSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.pitch.List())
}

type startSessionRequest struct {
	IdeaID string `json:"idea_id"`
}

func (h *Handler) StartPitchSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	id := h.pitch.Start(req.IdeaID)
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (h *Handler) GetPitchSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.pitch.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

func (h *Handler) SubmitPitchAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sess, err := h.pitch.Submit(chi.URLParam(r, "sessionID"), req.Answer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (h *Handler) GenerateCanvas(w http.ResponseWriter, r *http.Request) {
	content, err := h.canvas.Generate(chi.URLParam(r, "ideaID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, content)
}

func (h *Handler) GetCanvasDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.canvas.Document(chi.URLParam(r, "ideaID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) ListRecruitmentPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.recruit.List())
}

type createPostRequest struct {
	IdeaID      string   `json:"idea_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
}

func (h *Handler) CreateRecruitmentPost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	post, err := h.recruit.CreatePost(recruit.CreateRequest{
		IdeaID:      req.IdeaID,
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

type applyRequest struct {
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	Message       string `json:"message"`
}

func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	post, err := h.recruit.Apply(chi.URLParam(r, "postID"), req.ApplicantName, req.Email, req.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain sentinels onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, idea.ErrIdeaNotFound),
		errors.Is(err, pitch.ErrSessionNotFound),
		errors.Is(err, recruit.ErrPostNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, pitch.ErrSessionCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, idea.ErrInvalidInput),
		errors.Is(err, recruit.ErrInvalidInput),
		errors.Is(err, chat.ErrEmptyMessage),
		errors.Is(err, pitch.ErrEmptyAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
