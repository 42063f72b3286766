// Package mcp exposes the incubator operations as MCP tools so editor and
// agent clients can drive the same core the JSON API serves.
package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/seedworks/launchpad/internal/domain/canvas"
	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/domain/recruit"
)

// Services contains all domain services the tool surface needs.
type Services struct {
	Ideas   *idea.Service
	Funding *funding.Service
	Chat    *chat.Service
	Pitch   *pitch.Service
	Canvas  *canvas.Service
	Recruit *recruit.Service
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

const serverInstructions = `LaunchPad tracks startup ideas through an incubation workflow: idea
capture, a scripted mentor chat, business-model canvas generation, pitch
practice scored per answer, a token investment leaderboard, and recruitment
posts. All state is in-process and transient.`

// NewServer creates and configures an MCP server with all tools registered.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "launchpad",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerTools(server, cfg.Services)

	return server
}
