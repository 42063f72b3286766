package chat

import "strings"

// responseGroup pairs a set of trigger keywords with a canned reply. Groups
// are matched in declaration order and the first hit wins, so the order of
// this list is part of the responder's contract.
type responseGroup struct {
	keywords []string
	response string
}

var responseGroups = []responseGroup{
	{
		keywords: []string{"idea", "startup", "business"},
		response: "That sounds like an interesting concept! Let me help you develop it further. What problem does your idea solve? Who is your target audience?",
	},
	{
		keywords: []string{"market", "competition", "competitors"},
		response: "Great question about market analysis! To understand your competitive landscape, I'd suggest: 1) Identify direct and indirect competitors, 2) Analyze their strengths and weaknesses, 3) Find your unique value proposition. What makes your solution different?",
	},
	{
		keywords: []string{"revenue", "monetization", "money"},
		response: "Revenue models are crucial! Consider these options: 1) Subscription/SaaS, 2) Transaction fees, 3) Freemium model, 4) Advertisement, 5) One-time purchase. Which aligns best with your business model?",
	},
	{
		keywords: []string{"customer", "user", "target"},
		response: "Understanding your customers is key! Try creating user personas by defining: demographics, pain points, behaviors, and needs. Have you validated your assumptions with potential customers?",
	},
	{
		keywords: []string{"help", "guidance", "advice"},
		response: "I'm here to help! I can assist with: business model development, market validation, pitch preparation, competitive analysis, and growth strategies. What specific area would you like to focus on?",
	},
}

const fallbackResponse = "That's an interesting point! Could you tell me more about your specific goals? I'm here to help you develop your startup idea, validate your market, or prepare your pitch. What would you like to work on today?"

// Respond returns the canned assistant reply for a user message. Matching is
// case-insensitive substring search against each group's keywords.
func Respond(message string) string {
	lower := strings.ToLower(message)
	for _, group := range responseGroups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				return group.response
			}
		}
	}
	return fallbackResponse
}
