// Package state is the single source of truth for all domain collections.
// Every mutation is a pure reducer from one State value to the next; the
// Store handle swaps whole snapshots so observers never see a partially
// applied transition.
package state

import (
	"github.com/seedworks/launchpad/internal/domain/account"
	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/domain/recruit"
)

// State holds every domain collection plus the current user. Collections are
// insertion-ordered and never reordered in place.
type State struct {
	User             account.User
	Ideas            []idea.Idea
	Investments      []funding.Investment
	ChatMessages     []chat.Message
	PitchSessions    []pitch.Session
	RecruitmentPosts []recruit.Post
}

// clone deep-copies the state so reducers can build the next snapshot without
// aliasing the current one.
func (s State) clone() State {
	next := State{
		User:             s.User,
		Ideas:            make([]idea.Idea, len(s.Ideas)),
		Investments:      make([]funding.Investment, len(s.Investments)),
		ChatMessages:     make([]chat.Message, len(s.ChatMessages)),
		PitchSessions:    make([]pitch.Session, len(s.PitchSessions)),
		RecruitmentPosts: make([]recruit.Post, len(s.RecruitmentPosts)),
	}
	copy(next.Ideas, s.Ideas)
	copy(next.Investments, s.Investments)
	copy(next.ChatMessages, s.ChatMessages)

	next.User.Ideas = append([]string(nil), s.User.Ideas...)
	next.User.Investments = append([]string(nil), s.User.Investments...)

	for i, sess := range s.PitchSessions {
		sess.Answers = append([]string(nil), sess.Answers...)
		sess.Scores = append([]int(nil), sess.Scores...)
		sess.Feedback = append([]string(nil), sess.Feedback...)
		next.PitchSessions[i] = sess
	}
	for i, post := range s.RecruitmentPosts {
		post.Skills = append([]string(nil), post.Skills...)
		post.Applications = append([]recruit.Application(nil), post.Applications...)
		next.RecruitmentPosts[i] = post
	}
	return next
}

func (s State) ideaIndex(id string) int {
	for i := range s.Ideas {
		if s.Ideas[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) sessionIndex(id string) int {
	for i := range s.PitchSessions {
		if s.PitchSessions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) postIndex(id string) int {
	for i := range s.RecruitmentPosts {
		if s.RecruitmentPosts[i].ID == id {
			return i
		}
	}
	return -1
}
