package recruit

import "time"

// Post is a recruitment listing attached to an idea. Applications are
// append-only; skill tags keep their submitted order and duplicates.
type Post struct {
	ID           string        `json:"id"`
	IdeaID       string        `json:"idea_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Skills       []string      `json:"skills"`
	Applications []Application `json:"applications"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Application is one candidate's submission to a post. Immutable once created.
type Application struct {
	ID            string    `json:"id"`
	ApplicantName string    `json:"applicant_name"`
	Email         string    `json:"email"`
	Message       string    `json:"message"`
	AppliedAt     time.Time `json:"applied_at"`
}
