package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildDocument_SinglePageForShortContent(t *testing.T) {
	doc := BuildDocument("Foo", Generate("Foo", ""))

	require.Equal(t, "Business Model Canvas", doc.Title)
	require.Equal(t, "Foo", doc.IdeaTitle)
	require.Len(t, doc.Pages, 1)
	require.Len(t, doc.Pages[0].Blocks, 9)
	require.Equal(t, 1, doc.Pages[0].Number)

	// Blocks flow top to bottom.
	prev := -1
	for _, block := range doc.Pages[0].Blocks {
		require.Greater(t, block.Y, prev)
		prev = block.Y
	}
}

func TestBuildDocument_BreaksPastThreshold(t *testing.T) {
	long := strings.Repeat("stakeholder alignment across regions ", 40)
	content := Generate("Foo", "")
	for key := range content {
		content[key] = long
	}

	doc := BuildDocument("Foo", content)
	require.Greater(t, len(doc.Pages), 1)

	total := 0
	for i, page := range doc.Pages {
		require.Equal(t, i+1, page.Number)
		total += len(page.Blocks)
		for _, block := range page.Blocks {
			// No block starts past the break line.
			require.LessOrEqual(t, block.Y, pageBreakLine)
		}
	}
	require.Equal(t, 9, total)

	// Continuation pages start at the top margin.
	require.Equal(t, pageMargin, doc.Pages[1].Blocks[0].Y)
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "empty text yields one blank line",
			text:  "",
			width: 10,
			want:  []string{""},
		},
		{
			name:  "fits on one line",
			text:  "short text",
			width: 20,
			want:  []string{"short text"},
		},
		{
			name:  "wraps on word boundaries",
			text:  "alpha beta gamma delta",
			width: 11,
			want:  []string{"alpha beta", "gamma delta"},
		},
		{
			name:  "oversized word gets its own line",
			text:  "hi supercalifragilistic yo",
			width: 10,
			want:  []string{"hi", "supercalifragilistic", "yo"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
