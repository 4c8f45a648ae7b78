// Package view assembles the per-view line sequences embedded in the
// generated page.
package view

// Semantic line types understood by the client stylesheet.
const (
	TypeHeading   = "heading"
	TypeListItem  = "list-item"
	TypeInfo      = "info"
	TypeBlogTitle = "blog-title"
	TypeBlogDate  = "blog-date"
)

// BackHint is the default trailing navigation hint on content views.
const BackHint = "-- Press Esc to go back --"

// BlogBackHint is the trailing navigation hint on blog content views.
const BlogBackHint = "-- Press Esc to return to blog list --"

// Line is one renderable editor row. IsHTML marks Text as a pre-rendered
// fragment; plain text is escaped by the client when rendered.
type Line struct {
	Text   string `json:"text"`
	Type   string `json:"type,omitempty"`
	IsHTML bool   `json:"isHtml,omitempty"`
}

// InfoLine creates a navigation hint line.
func InfoLine(text string) Line {
	return Line{Text: text, Type: TypeInfo}
}

// BlankLine creates an empty spacer line.
func BlankLine() Line {
	return Line{}
}

// BlogIndexEntry is one row of the blog list view.
type BlogIndexEntry struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}
