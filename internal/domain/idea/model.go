package idea

import "time"

// Stage is the lifecycle stage of an idea. Stages are free-form edits, not an
// enforced progression.
type Stage string

const (
	StageIdea      Stage = "idea"
	StagePrototype Stage = "prototype"
	StageTesting   Stage = "testing"
	StageLaunch    Stage = "launch"
)

// Idea represents a startup idea tracked by the incubator.
type Idea struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Stage           Stage     `json:"stage"`
	AIScore         int       `json:"ai_score"`
	CrowdVotes      int       `json:"crowd_votes"`
	TotalInvestment int       `json:"total_investment"`
	CreatedAt       time.Time `json:"created_at"`
	UserID          string    `json:"user_id"`
	CanvasGenerated bool      `json:"canvas_generated,omitempty"`
}

// ValidationScore combines the fixed AI score with accumulated crowd votes.
// It is the leaderboard ranking key.
func (i Idea) ValidationScore() int {
	return i.AIScore + i.CrowdVotes
}

// Update describes a partial edit to an idea. Nil fields are left unchanged.
type Update struct {
	Title           *string
	Description     *string
	Stage           *Stage
	CanvasGenerated *bool
}
