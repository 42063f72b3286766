package pitch

var investorQuestions = []Question{
	{
		ID:       1,
		Question: "What problem does your startup solve and how big is this problem?",
		Tips:     "Focus on a real, painful problem that affects many people. Quantify the market size and impact.",
	},
	{
		ID:       2,
		Question: "What is your unique value proposition and competitive advantage?",
		Tips:     "Explain what makes you different and why customers would choose you over competitors.",
	},
	{
		ID:       3,
		Question: "Who is your target customer and how will you reach them?",
		Tips:     "Be specific about your customer segments and demonstrate understanding of their needs.",
	},
	{
		ID:       4,
		Question: "What is your revenue model and how will you make money?",
		Tips:     "Show clear paths to profitability and sustainable business model.",
	},
	{
		ID:       5,
		Question: "What traction do you have and what are your key metrics?",
		Tips:     "Present concrete evidence of progress: users, revenue, partnerships, etc.",
	},
	{
		ID:       6,
		Question: "How much funding do you need and how will you use it?",
		Tips:     "Be specific about funding amount and provide detailed breakdown of usage.",
	},
}

// Questions returns the scripted investor question sequence.
func Questions() []Question {
	out := make([]Question, len(investorQuestions))
	copy(out, investorQuestions)
	return out
}

// QuestionCount is the number of answers a session needs to complete.
func QuestionCount() int {
	return len(investorQuestions)
}
