package funding

import (
	"github.com/seedworks/launchpad/internal/domain/account"
	"github.com/seedworks/launchpad/internal/domain/idea"
)

// Store provides state access for the investment ledger. Invest applies the
// token transfer atomically or not at all.
type Store interface {
	Invest(ideaID string, amount int) bool
	Investments() []Investment
	Ideas() []idea.Idea
	User() account.User
}
