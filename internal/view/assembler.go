package view

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thevoxium/vimfolio/internal/config"
	"github.com/thevoxium/vimfolio/internal/content"
)

// Data is the complete assembled view model for one build. It maps directly
// onto the named data objects the client script consumes.
type Data struct {
	MainMenu     []config.NavigationEntry
	BlogIndex    []BlogIndexEntry
	BlogContent  map[string][]Line
	ContentViews map[string][]Line
	Socials      []Line
}

var titleCaser = cases.Title(language.English)

// Assemble is a pure transformation from config plus loaded content to the
// view model. Blog posts are only folded in when the navigation actually
// targets the blog list.
func Assemble(cfg *config.SiteConfig, pages map[string]content.Page, posts []content.BlogPost) *Data {
	data := &Data{
		MainMenu:     assembleMainMenu(cfg.Navigation),
		BlogContent:  map[string][]Line{},
		ContentViews: map[string][]Line{},
	}

	for viewID, page := range pages {
		data.ContentViews[viewID] = assembleContentView(page)
	}

	if cfg.HasNavigationTarget(config.ViewBlogsList) {
		data.BlogIndex = make([]BlogIndexEntry, 0, len(posts))
		for _, post := range posts {
			data.BlogIndex = append(data.BlogIndex, BlogIndexEntry{Title: post.Title, ID: post.ID})
			data.BlogContent[post.ID] = assembleBlogView(post)
		}
	}

	if cfg.HasNavigationTarget(config.ViewSocials) {
		data.Socials = assembleSocialsView(cfg.SocialsHeading, cfg.Socials)
	}

	return data
}

// ViewIDs returns every view container the page needs, sorted for
// deterministic output. The main view and the blog content view always
// exist.
func (d *Data) ViewIDs() []string {
	ids := map[string]bool{
		config.ViewMain:        true,
		config.ViewBlogContent: true,
	}
	for _, entry := range d.MainMenu {
		ids[entry.TargetView] = true
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)
	return sorted
}

func assembleMainMenu(nav []config.NavigationEntry) []config.NavigationEntry {
	menu := make([]config.NavigationEntry, len(nav))
	copy(menu, nav)
	for i := range menu {
		if menu[i].Text == "" {
			menu[i].Text = titleFromFilename(menu[i].Filename)
		}
	}
	return menu
}

func assembleContentView(page content.Page) []Line {
	if !page.Found {
		return []Line{}
	}

	lines := make([]Line, 0, len(page.Lines)+1)
	for _, l := range page.Lines {
		lines = append(lines, Line{Text: l.Text, IsHTML: l.HTML})
	}
	lines = append(lines, InfoLine(BackHint))
	return lines
}

func assembleBlogView(post content.BlogPost) []Line {
	lines := make([]Line, 0, len(post.Lines)+4)
	lines = append(lines, Line{Text: post.Date, Type: TypeBlogDate})
	lines = append(lines, Line{Text: post.Title, Type: TypeBlogTitle})
	lines = append(lines, BlankLine())
	for _, l := range post.Lines {
		lines = append(lines, Line{Text: l.Text, IsHTML: l.HTML})
	}
	lines = append(lines, InfoLine(BlogBackHint))
	return lines
}

func assembleSocialsView(heading string, links []config.SocialLink) []Line {
	lines := []Line{
		{Text: heading, Type: TypeHeading},
		BlankLine(),
	}
	for _, link := range links {
		linkHTML := fmt.Sprintf(
			`<span class="link-name">%s:</span> <a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
			html.EscapeString(link.Name),
			html.EscapeString(link.URL),
			html.EscapeString(link.DisplayText))
		lines = append(lines, Line{Text: linkHTML, Type: TypeListItem, IsHTML: true})
	}
	lines = append(lines, InfoLine(BackHint))
	return lines
}

// titleFromFilename derives menu text from a content filename stem,
// e.g. "my-page.md" becomes "My Page".
func titleFromFilename(filename string) string {
	stem := strings.TrimSuffix(filename, ".md")
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return titleCaser.String(stem)
}
