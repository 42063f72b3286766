package pitch

import (
	"strings"
	"unicode"
)

const baseScore = 50

// Feedback tier messages, selected by score thresholds.
const (
	feedbackExcellent = "Excellent answer! You provided comprehensive details with specific examples and metrics."
	feedbackGood      = "Good answer! Consider adding more specific examples or quantifiable metrics."
	feedbackDecent    = "Decent answer! Try to be more specific and provide concrete evidence."
	feedbackWeak      = "Your answer needs more detail. Include specific examples, metrics, and clearer explanations."
)

// ScoreAnswer rates one pitch answer with an additive rubric: base 50, length
// and specificity bonuses, capped at 100. It returns the score and the
// matching feedback tier message.
func ScoreAnswer(answer string) (int, string) {
	words := len(strings.Fields(answer))
	lower := strings.ToLower(answer)

	score := baseScore
	if words > 50 {
		score += 15
	}
	if words > 100 {
		score += 10
	}
	if containsDigit(answer) {
		score += 15
	}
	if strings.Contains(lower, "specifically") || strings.Contains(lower, "example") {
		score += 10
	}
	if len(answer) > 200 {
		score += 10
	}
	if score > 100 {
		score = 100
	}

	return score, feedbackFor(score)
}

func feedbackFor(score int) string {
	switch {
	case score >= 85:
		return feedbackExcellent
	case score >= 70:
		return feedbackGood
	case score >= 55:
		return feedbackDecent
	default:
		return feedbackWeak
	}
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
