// Package content reads Markdown pages and blog posts from the content
// directory and converts them to renderable HTML fragments.
package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/thevoxium/vimfolio/internal/config"
	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
	"github.com/thevoxium/vimfolio/internal/frontmatter"
	"github.com/thevoxium/vimfolio/internal/logfields"
	"github.com/thevoxium/vimfolio/internal/markdown"
)

// BlogsSubdir is the blogs directory name under the content directory.
const BlogsSubdir = "blogs"

// Line is one rendered fragment of a loaded document. HTML marks the text
// as pre-rendered markup rather than plain text.
type Line struct {
	Text string
	HTML bool
}

// Page is the rendered body of one navigation-linked Markdown file. Found
// is false when the source file was missing or unparseable; such views stay
// registered but render empty.
type Page struct {
	ViewID   string
	Filename string
	Found    bool
	Lines    []Line
}

// BlogPost is one post collected from the blogs directory. ID is the
// filename stem.
type BlogPost struct {
	ID    string
	Title string
	Date  string
	Lines []Line
}

// Loader reads content files for a single build.
type Loader struct {
	contentDir string
	conv       *markdown.Converter
	logger     *slog.Logger
	errs       *siteerrors.CLIErrorAdapter
}

// NewLoader creates a loader rooted at contentDir.
func NewLoader(contentDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		contentDir: contentDir,
		conv:       markdown.NewConverter(),
		logger:     logger,
		errs:       siteerrors.NewCLIErrorAdapter(false, logger),
	}
}

// LoadPages reads the Markdown file behind every non-special navigation
// entry. A missing or unreadable file yields a warning and an empty page;
// the build continues.
func (l *Loader) LoadPages(nav []config.NavigationEntry) map[string]Page {
	pages := make(map[string]Page)

	for _, entry := range nav {
		if config.SpecialViews[entry.TargetView] || !strings.HasSuffix(entry.Filename, ".md") {
			continue
		}

		path := filepath.Join(l.contentDir, entry.Filename)
		page := Page{ViewID: entry.TargetView, Filename: entry.Filename}

		raw, err := os.ReadFile(path)
		if err != nil {
			l.logger.Warn("Content file not found, view will be empty",
				logfields.File(path), logfields.View(entry.TargetView))
			pages[entry.TargetView] = page
			continue
		}

		_, body, _, err := frontmatter.Split(raw)
		if err != nil {
			l.logger.Warn("Skipping page with malformed front matter",
				logfields.File(path), logfields.Error(err))
			pages[entry.TargetView] = page
			continue
		}

		page.Found = true
		page.Lines = l.bodyLines(path, body)
		pages[entry.TargetView] = page
	}

	return pages
}

// LoadBlogPosts collects posts from the blogs subdirectory, sorted by
// filename stem descending. Posts missing a title or date are skipped with
// a warning; this is the only locally recovered error class. A missing
// blogs directory yields a warning and no posts.
func (l *Loader) LoadBlogPosts() ([]BlogPost, error) {
	blogDir := filepath.Join(l.contentDir, BlogsSubdir)

	info, err := os.Stat(blogDir)
	if err != nil || !info.IsDir() {
		l.logger.Warn("Blog directory not found", logfields.File(blogDir))
		return nil, nil
	}

	entries, err := os.ReadDir(blogDir)
	if err != nil {
		return nil, siteerrors.ContentDirUnreadable(blogDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	var posts []BlogPost
	for _, name := range names {
		post, err := l.loadBlogPost(blogDir, name)
		if err != nil {
			l.errs.LogError(err)
			continue
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (l *Loader) loadBlogPost(blogDir, name string) (BlogPost, error) {
	path := filepath.Join(blogDir, name)
	id := strings.TrimSuffix(name, ".md")

	raw, err := os.ReadFile(path)
	if err != nil {
		return BlogPost{}, siteerrors.Wrap(err, siteerrors.CategoryContent,
			siteerrors.SeverityWarning, "blog post unreadable").WithContext("file", path)
	}

	fm, body, _, err := frontmatter.Split(raw)
	if err != nil {
		return BlogPost{}, siteerrors.FrontMatterInvalid(path, err)
	}

	fields, err := frontmatter.ParseYAML(fm)
	if err != nil {
		return BlogPost{}, siteerrors.FrontMatterInvalid(path, err)
	}

	title := stringField(fields["title"])
	if title == "" {
		return BlogPost{}, siteerrors.BlogFieldMissing(path, "title")
	}
	date := stringField(fields["date"])
	if date == "" {
		return BlogPost{}, siteerrors.BlogFieldMissing(path, "date")
	}

	return BlogPost{
		ID:    id,
		Title: title,
		Date:  date,
		Lines: l.bodyLines(path, body),
	}, nil
}

// bodyLines converts a Markdown body to HTML lines, falling back to plain
// text lines if conversion fails.
func (l *Loader) bodyLines(path string, body []byte) []Line {
	htmlLines, err := l.conv.ToHTMLLines(body)
	if err != nil {
		l.logger.Warn("Markdown processing error, falling back to plain text",
			logfields.File(path), logfields.Error(err))
		var lines []Line
		for _, text := range markdown.PlainLines(body) {
			lines = append(lines, Line{Text: text})
		}
		return lines
	}

	var lines []Line
	for _, text := range htmlLines {
		lines = append(lines, Line{Text: text, HTML: true})
	}
	return lines
}

// stringField renders a front matter value as a display string. yaml.v3
// leaves bare dates as strings but quoted timestamps may decode to
// time.Time depending on authoring style.
func stringField(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(value)
	case time.Time:
		return value.Format("2006-01-02")
	default:
		return strings.TrimSpace(fmt.Sprint(value))
	}
}
