package canvas

import "strings"

// Layout constants for the exported canvas document, in page units on a
// 297-unit page. A block that would start past the break line opens a new
// page; these values are the layout contract the PDF collaborator renders.
const (
	PageHeight     = 297
	pageMargin     = 20
	pageBreakLine  = 250
	headerHeight   = 15
	subtitleHeight = 20
	titleHeight    = 8
	lineHeight     = 6
	blockGap       = 10
	wrapColumns    = 90
)

// RenderedBlock is one canvas block placed on a page.
type RenderedBlock struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
	Y     int      `json:"y"`
}

// Page holds the blocks that fit before the break line.
type Page struct {
	Number int             `json:"number"`
	Blocks []RenderedBlock `json:"blocks"`
}

// Document is the paginated canvas export for one idea.
type Document struct {
	Title     string `json:"title"`
	IdeaTitle string `json:"idea_title"`
	Pages     []Page `json:"pages"`
}

// BuildDocument lays out the nine canvas blocks top to bottom, starting a new
// page whenever the next block would begin past the break line. The first
// page carries the document header and idea title.
func BuildDocument(ideaTitle string, content map[BlockKey]string) Document {
	doc := Document{
		Title:     "Business Model Canvas",
		IdeaTitle: ideaTitle,
	}

	page := Page{Number: 1}
	y := pageMargin + headerHeight + subtitleHeight

	for _, block := range blocks {
		if y > pageBreakLine {
			doc.Pages = append(doc.Pages, page)
			page = Page{Number: page.Number + 1}
			y = pageMargin
		}

		lines := wrapText(content[block.Key], wrapColumns)
		page.Blocks = append(page.Blocks, RenderedBlock{
			Title: block.Title,
			Lines: lines,
			Y:     y,
		})
		y += titleHeight + len(lines)*lineHeight + blockGap
	}

	doc.Pages = append(doc.Pages, page)
	return doc
}

// wrapText breaks text into lines of at most width columns, splitting on
// word boundaries. Words longer than the width get a line of their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
