package idea

// Store provides state access for ideas. Mutators apply fully or not at all;
// the returned bool reports whether anything changed.
type Store interface {
	CreateIdea(title, description string, stage Stage) Idea
	UpdateIdea(id string, upd Update) bool
	DeleteIdea(id string) bool
	Idea(id string) (Idea, bool)
	Ideas() []Idea
}
