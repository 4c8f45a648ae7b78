package site

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/thevoxium/vimfolio/internal/config"
	"github.com/thevoxium/vimfolio/internal/view"
)

// Verify parses the rendered document and checks it for structural problems:
// missing or duplicated view containers, a missing embedded script, or a
// title that does not match the configuration. Returned problems are
// warnings, never fatal.
func Verify(document string, cfg *config.SiteConfig, data *view.Data) []string {
	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return []string{fmt.Sprintf("output is not parseable HTML: %v", err)}
	}

	idCounts := map[string]int{}
	scriptCount := 0
	pageTitle := ""

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.Data == "script" {
				scriptCount++
			}
			if n.Data == "title" && n.FirstChild != nil {
				pageTitle = n.FirstChild.Data
			}
			for _, attr := range n.Attr {
				if attr.Key == "id" {
					idCounts[attr.Val]++
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	var problems []string
	for _, id := range data.ViewIDs() {
		switch count := idCounts[id]; {
		case count == 0:
			problems = append(problems, fmt.Sprintf("view container %q missing from output", id))
		case count > 1:
			problems = append(problems, fmt.Sprintf("view container %q appears %d times", id, count))
		}
	}
	if scriptCount == 0 {
		problems = append(problems, "embedded client script missing from output")
	}
	// The parser unescapes entities, so an escaped title round-trips here.
	if pageTitle != cfg.Title {
		problems = append(problems, fmt.Sprintf("page title %q does not match configured title %q", pageTitle, cfg.Title))
	}
	return problems
}
