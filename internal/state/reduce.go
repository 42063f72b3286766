package state

import (
	"time"

	"github.com/seedworks/launchpad/internal/domain/chat"
	"github.com/seedworks/launchpad/internal/domain/funding"
	"github.com/seedworks/launchpad/internal/domain/idea"
	"github.com/seedworks/launchpad/internal/domain/pitch"
	"github.com/seedworks/launchpad/internal/domain/recruit"
)

// Reducers build the next snapshot from the current one. Each returns the new
// state and whether anything changed; a rejected mutation returns the input
// state untouched.

func reduceCreateIdea(s State, id string, now time.Time, title, description string, stage idea.Stage, aiScore int) (State, idea.Idea) {
	created := idea.Idea{
		ID:          id,
		Title:       title,
		Description: description,
		Stage:       stage,
		AIScore:     aiScore,
		CreatedAt:   now,
		UserID:      s.User.ID,
	}
	next := s.clone()
	next.Ideas = append(next.Ideas, created)
	next.User.Ideas = append(next.User.Ideas, created.ID)
	return next, created
}

func reduceUpdateIdea(s State, id string, upd idea.Update) (State, bool) {
	i := s.ideaIndex(id)
	if i < 0 {
		return s, false
	}
	next := s.clone()
	target := &next.Ideas[i]
	if upd.Title != nil {
		target.Title = *upd.Title
	}
	if upd.Description != nil {
		target.Description = *upd.Description
	}
	if upd.Stage != nil {
		target.Stage = *upd.Stage
	}
	if upd.CanvasGenerated != nil {
		target.CanvasGenerated = *upd.CanvasGenerated
	}
	return next, true
}

// reduceDeleteIdea removes the idea from the collection and the owner's list.
// Investments, pitch sessions, and recruitment posts referencing it are kept
// as historical records.
func reduceDeleteIdea(s State, id string) (State, bool) {
	if s.ideaIndex(id) < 0 {
		return s, false
	}
	next := s.clone()
	kept := next.Ideas[:0]
	for _, i := range next.Ideas {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	next.Ideas = kept

	owned := next.User.Ideas[:0]
	for _, ideaID := range next.User.Ideas {
		if ideaID != id {
			owned = append(owned, ideaID)
		}
	}
	next.User.Ideas = owned
	return next, true
}

// reduceInvest applies the four-way investment transition in one step:
// ledger entry, token debit, user investment list, idea credit. Any failed
// precondition rejects the whole mutation.
func reduceInvest(s State, id string, now time.Time, ideaID string, amount int) (State, bool) {
	if amount <= 0 || amount > s.User.Tokens {
		return s, false
	}
	i := s.ideaIndex(ideaID)
	if i < 0 {
		return s, false
	}

	entry := funding.Investment{
		ID:         id,
		InvestorID: s.User.ID,
		IdeaID:     ideaID,
		Amount:     amount,
		Timestamp:  now,
	}

	next := s.clone()
	next.Investments = append(next.Investments, entry)
	next.User.Tokens -= amount
	next.User.Investments = append(next.User.Investments, entry.ID)
	next.Ideas[i].TotalInvestment += amount
	next.Ideas[i].CrowdVotes++
	return next, true
}

func reduceAppendMessage(s State, id string, now time.Time, sender chat.Sender, content string) (State, chat.Message) {
	msg := chat.Message{
		ID:        id,
		Sender:    sender,
		Content:   content,
		Timestamp: now,
	}
	next := s.clone()
	next.ChatMessages = append(next.ChatMessages, msg)
	return next, msg
}

func reduceCreateSession(s State, id string, now time.Time, ideaID string) State {
	next := s.clone()
	next.PitchSessions = append(next.PitchSessions, pitch.Session{
		ID:        id,
		IdeaID:    ideaID,
		CreatedAt: now,
	})
	return next
}

// reduceAdvanceSession appends one answer/score/feedback triple, bumps the
// question index, and keeps the running average current. Completion is set
// when the index reaches the question count. Advancing an unknown or
// completed session changes nothing.
func reduceAdvanceSession(s State, sessionID, answer string, score int, feedback string) (State, bool) {
	i := s.sessionIndex(sessionID)
	if i < 0 {
		return s, false
	}
	if s.PitchSessions[i].Completed {
		return s, false
	}

	next := s.clone()
	sess := &next.PitchSessions[i]
	sess.Answers = append(sess.Answers, answer)
	sess.Scores = append(sess.Scores, score)
	sess.Feedback = append(sess.Feedback, feedback)
	sess.CurrentQuestion++

	total := 0
	for _, sc := range sess.Scores {
		total += sc
	}
	sess.Score = float64(total) / float64(len(sess.Scores))
	sess.Completed = sess.CurrentQuestion >= pitch.QuestionCount()
	return next, true
}

func reduceCreatePost(s State, id string, now time.Time, ideaID, title, description string, skills []string) (State, recruit.Post) {
	post := recruit.Post{
		ID:          id,
		IdeaID:      ideaID,
		Title:       title,
		Description: description,
		Skills:      append([]string(nil), skills...),
		CreatedAt:   now,
	}
	next := s.clone()
	next.RecruitmentPosts = append(next.RecruitmentPosts, post)
	return next, post
}

func reduceSubmitApplication(s State, id string, now time.Time, postID, applicantName, email, message string) (State, bool) {
	i := s.postIndex(postID)
	if i < 0 {
		return s, false
	}
	next := s.clone()
	next.RecruitmentPosts[i].Applications = append(next.RecruitmentPosts[i].Applications, recruit.Application{
		ID:            id,
		ApplicantName: applicantName,
		Email:         email,
		Message:       message,
		AppliedAt:     now,
	})
	return next, true
}
