package account

// User is the single founder account for a running process. There is no
// multi-user model; the store owns one live instance.
type User struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tokens      int      `json:"tokens"`
	Ideas       []string `json:"ideas"`
	Investments []string `json:"investments"`
}
