package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thevoxium/vimfolio/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadPages_RendersMarkdownAsHTMLLines(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "about.md", "# About\n\nHello there\n")

	loader := NewLoader(dir, nil)
	pages := loader.LoadPages([]config.NavigationEntry{
		{Text: "About", TargetView: "about-view", Filename: "about.md"},
	})

	require.Contains(t, pages, "about-view")
	page := pages["about-view"]
	require.NotEmpty(t, page.Lines)
	require.True(t, page.Lines[0].HTML)
	require.Contains(t, page.Lines[0].Text, "About")
}

func TestLoadPages_StripsFrontMatter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "about.md", "---\ntitle: ignored\n---\nbody text\n")

	loader := NewLoader(dir, nil)
	pages := loader.LoadPages([]config.NavigationEntry{
		{TargetView: "about-view", Filename: "about.md"},
	})

	for _, line := range pages["about-view"].Lines {
		require.NotContains(t, line.Text, "ignored")
	}
}

func TestLoadPages_MissingFile_YieldsEmptyPage(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil)
	pages := loader.LoadPages([]config.NavigationEntry{
		{TargetView: "about-view", Filename: "about.md"},
	})

	require.Contains(t, pages, "about-view")
	require.Empty(t, pages["about-view"].Lines)
}

func TestLoadPages_SkipsSpecialViews(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil)
	pages := loader.LoadPages([]config.NavigationEntry{
		{TargetView: config.ViewBlogsList, Filename: "blogs"},
		{TargetView: config.ViewSocials, Filename: "socials"},
	})

	require.Empty(t, pages)
}

func TestLoadBlogPosts_SortedByStemDescending(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blogs/2023-06-01.md", "---\ntitle: Older\ndate: 2023-06-01\n---\nold\n")
	writeFile(t, dir, "blogs/2024-01-01.md", "---\ntitle: Newer\ndate: 2024-01-01\n---\nnew\n")

	loader := NewLoader(dir, nil)
	posts, err := loader.LoadBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "2024-01-01", posts[0].ID)
	require.Equal(t, "2023-06-01", posts[1].ID)
}

func TestLoadBlogPosts_MissingTitle_SkipsOnlyThatPost(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blogs/2024-01-01.md", "---\ndate: 2024-01-01\n---\nno title\n")
	writeFile(t, dir, "blogs/2023-06-01.md", "---\ntitle: Valid\ndate: 2023-06-01\n---\nok\n")

	loader := NewLoader(dir, nil)
	posts, err := loader.LoadBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	require.Equal(t, "2023-06-01", posts[0].ID)
}

func TestLoadBlogPosts_MissingDate_SkipsPost(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blogs/2024-01-01.md", "---\ntitle: No Date\n---\nbody\n")

	loader := NewLoader(dir, nil)
	posts, err := loader.LoadBlogPosts()
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestLoadBlogPosts_MalformedFrontMatter_SkipsPost(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blogs/2024-01-01.md", "---\ntitle: broken\nbody without closing\n")
	writeFile(t, dir, "blogs/2023-06-01.md", "---\ntitle: Valid\ndate: 2023-06-01\n---\nok\n")

	loader := NewLoader(dir, nil)
	posts, err := loader.LoadBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestLoadBlogPosts_MissingDirectory_ReturnsNoPosts(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil)
	posts, err := loader.LoadBlogPosts()
	require.NoError(t, err)
	require.Empty(t, posts)
}

func TestLoadBlogPosts_IgnoresNonMarkdownFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "blogs/notes.txt", "plain text")
	writeFile(t, dir, "blogs/2024-01-01.md", "---\ntitle: Post\ndate: 2024-01-01\n---\nbody\n")

	loader := NewLoader(dir, nil)
	posts, err := loader.LoadBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
}

func TestStringField_Formats(t *testing.T) {
	require.Equal(t, "", stringField(nil))
	require.Equal(t, "2024-01-01", stringField("2024-01-01"))
	require.Equal(t, "42", stringField(42))
}
