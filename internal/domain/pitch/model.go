package pitch

import "time"

// Session is one pitch-practice run against the fixed question sequence.
// Answers, per-answer scores, and feedback accumulate in lockstep;
// CurrentQuestion counts submissions and the session completes when it
// reaches the question count.
type Session struct {
	ID              string    `json:"id"`
	IdeaID          string    `json:"idea_id"`
	CurrentQuestion int       `json:"current_question"`
	Answers         []string  `json:"answers"`
	Scores          []int     `json:"scores"`
	Feedback        []string  `json:"feedback"`
	Score           float64   `json:"score"`
	Completed       bool      `json:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// Question is one scripted investor question with its coaching tip.
type Question struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Tips     string `json:"tips"`
}
