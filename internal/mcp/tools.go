package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seedworks/launchpad/internal/domain/account"
	"github.com/seedworks/launchpad/internal/domain/canvas"
	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/domain/recruit"
)

func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_user",
		Description: "Get the current user with token balance",
	}, getUserHandler(svcs.Funding))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_idea",
		Description: "Track a new startup idea; an AI score is assigned at creation",
	}, createIdeaHandler(svcs.Ideas))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_idea",
		Description: "Edit an idea's title, description, or lifecycle stage",
	}, updateIdeaHandler(svcs.Ideas))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_idea",
		Description: "Remove an idea; its investment history is kept",
	}, deleteIdeaHandler(svcs.Ideas))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_ideas",
		Description: "List all tracked ideas in creation order",
	}, listIdeasHandler(svcs.Ideas))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "invest",
		Description: "Invest tokens in an idea; rejected if the balance is insufficient",
	}, investHandler(svcs.Funding))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_leaderboard",
		Description: "List ideas ranked by validation score (AI score plus crowd votes)",
	}, leaderboardHandler(svcs.Funding))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "send_message",
		Description: "Send a chat message to the mentor and get the reply",
	}, sendMessageHandler(svcs.Chat))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "start_pitch",
		Description: "Start a pitch-practice session for an idea",
	}, startPitchHandler(svcs.Pitch))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_answer",
		Description: "Answer the current pitch question and get a score with feedback",
	}, submitAnswerHandler(svcs.Pitch))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_session",
		Description: "Get a pitch session's answers, scores, and completion state",
	}, getSessionHandler(svcs.Pitch))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "generate_canvas",
		Description: "Generate the nine-block business model canvas for an idea",
	}, generateCanvasHandler(svcs.Canvas))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_post",
		Description: "Publish a recruitment post for an idea",
	}, createPostHandler(svcs.Recruit))
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "apply_to_post",
		Description: "Apply to a recruitment post",
	}, applyHandler(svcs.Recruit))
}

type emptyInput struct{}

func getUserHandler(svc *funding.Service) sdkmcp.ToolHandlerFor[emptyInput, account.User] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, account.User, error) {
		return nil, svc.User(), nil
	}
}

type createIdeaInput struct {
	Title       string `json:"title" jsonschema:"the idea's title"`
	Description string `json:"description,omitempty" jsonschema:"what the idea does"`
	Stage       string `json:"stage,omitempty" jsonschema:"lifecycle stage: idea, prototype, testing, or launch"`
}

func createIdeaHandler(svc *idea.Service) sdkmcp.ToolHandlerFor[createIdeaInput, idea.Idea] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input createIdeaInput) (*sdkmcp.CallToolResult, idea.Idea, error) {
		created, err := svc.Create(idea.CreateRequest{
			Title:       input.Title,
			Description: input.Description,
			Stage:       idea.Stage(input.Stage),
		})
		if err != nil {
			return nil, idea.Idea{}, err
		}
		return nil, created, nil
	}
}

type updateIdeaInput struct {
	ID          string  `json:"id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Stage       *string `json:"stage,omitempty"`
}

type ideaListResult struct {
	Ideas []idea.Idea `json:"ideas"`
}

func updateIdeaHandler(svc *idea.Service) sdkmcp.ToolHandlerFor[updateIdeaInput, ideaListResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input updateIdeaInput) (*sdkmcp.CallToolResult, ideaListResult, error) {
		var stage *idea.Stage
		if input.Stage != nil {
			s := idea.Stage(*input.Stage)
			stage = &s
		}
		ideas := svc.Update(input.ID, idea.Update{
			Title:       input.Title,
			Description: input.Description,
			Stage:       stage,
		})
		return nil, ideaListResult{Ideas: ideas}, nil
	}
}

type ideaIDInput struct {
	ID string `json:"id"`
}

func deleteIdeaHandler(svc *idea.Service) sdkmcp.ToolHandlerFor[ideaIDInput, ideaListResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ideaIDInput) (*sdkmcp.CallToolResult, ideaListResult, error) {
		return nil, ideaListResult{Ideas: svc.Delete(input.ID)}, nil
	}
}

func listIdeasHandler(svc *idea.Service) sdkmcp.ToolHandlerFor[emptyInput, ideaListResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, ideaListResult, error) {
		return nil, ideaListResult{Ideas: svc.List()}, nil
	}
}

type investInput struct {
	IdeaID string `json:"idea_id"`
	Amount int    `json:"amount" jsonschema:"tokens to invest, must not exceed the balance"`
}

func investHandler(svc *funding.Service) sdkmcp.ToolHandlerFor[investInput, funding.InvestResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input investInput) (*sdkmcp.CallToolResult, funding.InvestResult, error) {
		return nil, svc.Invest(input.IdeaID, input.Amount), nil
	}
}

type leaderboardResult struct {
	Entries []funding.LeaderboardEntry `json:"entries"`
}

func leaderboardHandler(svc *funding.Service) sdkmcp.ToolHandlerFor[emptyInput, leaderboardResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ emptyInput) (*sdkmcp.CallToolResult, leaderboardResult, error) {
		return nil, leaderboardResult{Entries: svc.Leaderboard()}, nil
	}
}

type sendMessageInput struct {
	Content string `json:"content"`
}

type chatResult struct {
	Messages []chat.Message `json:"messages"`
}

func sendMessageHandler(svc *chat.Service) sdkmcp.ToolHandlerFor[sendMessageInput, chatResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input sendMessageInput) (*sdkmcp.CallToolResult, chatResult, error) {
		if _, err := svc.Send(input.Content); err != nil {
			return nil, chatResult{}, err
		}
		return nil, chatResult{Messages: svc.History()}, nil
	}
}

type startPitchInput struct {
	IdeaID string `json:"idea_id"`
}

type startPitchResult struct {
	SessionID string           `json:"session_id"`
	Questions []pitch.Question `json:"questions"`
}

func startPitchHandler(svc *pitch.Service) sdkmcp.ToolHandlerFor[startPitchInput, startPitchResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input startPitchInput) (*sdkmcp.CallToolResult, startPitchResult, error) {
		id := svc.Start(input.IdeaID)
		return nil, startPitchResult{SessionID: id, Questions: pitch.Questions()}, nil
	}
}

type submitAnswerInput struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

func submitAnswerHandler(svc *pitch.Service) sdkmcp.ToolHandlerFor[submitAnswerInput, pitch.Session] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input submitAnswerInput) (*sdkmcp.CallToolResult, pitch.Session, error) {
		sess, err := svc.Submit(input.SessionID, input.Answer)
		if err != nil {
			return nil, pitch.Session{}, err
		}
		return nil, sess, nil
	}
}

type sessionIDInput struct {
	SessionID string `json:"session_id"`
}

func getSessionHandler(svc *pitch.Service) sdkmcp.ToolHandlerFor[sessionIDInput, pitch.Session] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input sessionIDInput) (*sdkmcp.CallToolResult, pitch.Session, error) {
		sess, err := svc.Get(input.SessionID)
		if err != nil {
			return nil, pitch.Session{}, err
		}
		return nil, sess, nil
	}
}

type canvasResult struct {
	Blocks map[canvas.BlockKey]string `json:"blocks"`
}

func generateCanvasHandler(svc *canvas.Service) sdkmcp.ToolHandlerFor[ideaIDInput, canvasResult] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input ideaIDInput) (*sdkmcp.CallToolResult, canvasResult, error) {
		content, err := svc.Generate(input.ID)
		if err != nil {
			return nil, canvasResult{}, err
		}
		return nil, canvasResult{Blocks: content}, nil
	}
}

type createPostInput struct {
	IdeaID      string   `json:"idea_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

func createPostHandler(svc *recruit.Service) sdkmcp.ToolHandlerFor[createPostInput, recruit.Post] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input createPostInput) (*sdkmcp.CallToolResult, recruit.Post, error) {
		post, err := svc.CreatePost(recruit.CreateRequest{
			IdeaID:      input.IdeaID,
			Title:       input.Title,
			Description: input.Description,
			Skills:      input.Skills,
		})
		if err != nil {
			return nil, recruit.Post{}, err
		}
		return nil, post, nil
	}
}

type applyInput struct {
	PostID        string `json:"post_id"`
	ApplicantName string `json:"applicant_name"`
	Email         string `json:"email"`
	Message       string `json:"message,omitempty"`
}

func applyHandler(svc *recruit.Service) sdkmcp.ToolHandlerFor[applyInput, recruit.Post] {
	return func(ctx context.Context, _ *sdkmcp.CallToolRequest, input applyInput) (*sdkmcp.CallToolResult, recruit.Post, error) {
		post, err := svc.Apply(input.PostID, input.ApplicantName, input.Email, input.Message)
		if err != nil {
			return nil, recruit.Post{}, err
		}
		return nil, post, nil
	}
}
