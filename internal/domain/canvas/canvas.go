package canvas

import "fmt"

// BlockKey identifies one of the nine canvas categories.
type BlockKey string

const (
	KeyPartners           BlockKey = "keyPartners"
	KeyActivities         BlockKey = "keyActivities"
	KeyResources          BlockKey = "keyResources"
	ValueProposition      BlockKey = "valueProposition"
	CustomerRelationships BlockKey = "customerRelationships"
	Channels              BlockKey = "channels"
	CustomerSegments      BlockKey = "customerSegments"
	CostStructure         BlockKey = "costStructure"
	RevenueStreams        BlockKey = "revenueStreams"
)

// Block describes one canvas category.
type Block struct {
	Key         BlockKey `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

var blocks = []Block{
	{Key: KeyPartners, Title: "Key Partners", Description: "Who are your key partners and suppliers?"},
	{Key: KeyActivities, Title: "Key Activities", Description: "What key activities does your value proposition require?"},
	{Key: KeyResources, Title: "Key Resources", Description: "What key resources does your value proposition require?"},
	{Key: ValueProposition, Title: "Value Proposition", Description: "What value do you deliver to customers?"},
	{Key: CustomerRelationships, Title: "Customer Relationships", Description: "What type of relationship do you establish?"},
	{Key: Channels, Title: "Channels", Description: "Through which channels do you reach customers?"},
	{Key: CustomerSegments, Title: "Customer Segments", Description: "For whom are you creating value?"},
	{Key: CostStructure, Title: "Cost Structure", Description: "What are the most important costs?"},
	{Key: RevenueStreams, Title: "Revenue Streams", Description: "For what value are customers willing to pay?"},
}

// Blocks returns the nine canvas categories in layout order.
func Blocks() []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return out
}

// Generate fills the nine canvas blocks for an idea. Every block is fixed
// boilerplate except the value proposition, which carries the idea title.
// All nine keys are always present.
func Generate(title, description string) map[BlockKey]string {
	_ = description
	return map[BlockKey]string{
		KeyPartners:           "Technology providers, strategic advisors, key suppliers, distribution partners",
		KeyActivities:         "Platform development, customer acquisition, content creation, data analysis",
		KeyResources:          "Technical team, intellectual property, brand, customer data",
		ValueProposition:      fmt.Sprintf("%s - Solving key problems for customers through innovative solutions", title),
		CustomerRelationships: "Personal assistance, self-service platform, community building",
		Channels:              "Digital marketing, direct sales, partnerships, social media",
		CustomerSegments:      "Early adopters, tech-savvy users, businesses seeking efficiency",
		CostStructure:         "Development costs, marketing expenses, operational overhead, talent acquisition",
		RevenueStreams:        "Subscription fees, transaction fees, premium features, partnerships",
	}
}
