package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
)

const fixtureConfig = `
site_title: "Fixture Portfolio"
username: "fixture"
default_theme: "theme-dracula"
themes:
  - name: "Dracula"
    className: "theme-dracula"
main_navigation:
  - text: "About Me"
    targetView: "about-view"
    filename: "about.md"
  - text: "Blogs"
    targetView: "blogs-list-view"
    filename: "blogs"
  - text: "Socials"
    targetView: "socials-view"
    filename: "socials"
socials_links:
  - name: "GitHub"
    url: "https://github.com/fixture"
`

func writeFixture(t *testing.T, root, name, content string) {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func fixtureSite(t *testing.T) Options {
	t.Helper()
	root := t.TempDir()
	writeFixture(t, root, "config.yaml", fixtureConfig)
	writeFixture(t, root, "content/about.md", "# About\n\nHello\n")
	writeFixture(t, root, "content/blogs/2024-01-01.md",
		"---\ntitle: Newer Post\ndate: 2024-01-01\n---\nnew body\n")
	writeFixture(t, root, "content/blogs/2023-06-01.md",
		"---\ntitle: Older Post\ndate: 2023-06-01\n---\nold body\n")

	return Options{
		ConfigPath: filepath.Join(root, "config.yaml"),
		ContentDir: filepath.Join(root, "content"),
		OutputDir:  filepath.Join(root, "public"),
	}
}

func TestRun_GeneratesOutputFile(t *testing.T) {
	opts := fixtureSite(t)
	result, err := Run(opts, nil)
	require.NoError(t, err)
	require.Empty(t, result.Problems)
	require.Equal(t, 2, result.Posts)
	require.Equal(t, 1, result.Pages)
	require.FileExists(t, result.OutputPath)
}

func TestRun_OutputContainsNavigationAndPosts(t *testing.T) {
	opts := fixtureSite(t)
	result, err := Run(opts, nil)
	require.NoError(t, err)

	doc, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	output := string(doc)

	require.Equal(t, 1, strings.Count(output, `"targetView":"about-view"`))
	require.Equal(t, 1, strings.Count(output, `"targetView":"blogs-list-view"`))
	require.Equal(t, 1, strings.Count(output, `"targetView":"socials-view"`))

	newer := strings.Index(output, `"id":"2024-01-01"`)
	older := strings.Index(output, `"id":"2023-06-01"`)
	require.GreaterOrEqual(t, newer, 0)
	require.Less(t, newer, older)
}

func TestRun_Idempotent(t *testing.T) {
	opts := fixtureSite(t)

	first, err := Run(opts, nil)
	require.NoError(t, err)
	firstDoc, err := os.ReadFile(first.OutputPath)
	require.NoError(t, err)

	second, err := Run(opts, nil)
	require.NoError(t, err)
	secondDoc, err := os.ReadFile(second.OutputPath)
	require.NoError(t, err)

	require.Equal(t, firstDoc, secondDoc)
}

func TestRun_InvalidBlogPostIsIsolated(t *testing.T) {
	opts := fixtureSite(t)
	writeFixture(t, filepath.Dir(opts.ConfigPath), "content/blogs/2025-01-01.md",
		"---\ndate: 2025-01-01\n---\nmissing title\n")

	result, err := Run(opts, nil)
	require.NoError(t, err)
	require.Equal(t, 2, result.Posts)

	doc, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	require.NotContains(t, string(doc), `"id":"2025-01-01"`)
	require.Contains(t, string(doc), `"id":"2024-01-01"`)
}

func TestRun_MissingConfigIsFatal(t *testing.T) {
	opts := fixtureSite(t)
	opts.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Run(opts, nil)
	require.Error(t, err)
	require.True(t, siteerrors.IsCategory(err, siteerrors.CategoryConfig))
}

func TestRun_MissingPageFileStillBuilds(t *testing.T) {
	opts := fixtureSite(t)
	require.NoError(t, os.Remove(filepath.Join(opts.ContentDir, "about.md")))

	result, err := Run(opts, nil)
	require.NoError(t, err)
	require.FileExists(t, result.OutputPath)

	doc, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	require.Contains(t, string(doc), `"about-view":[]`)
}

func TestOptions_Defaults(t *testing.T) {
	opts := Options{}
	opts.applyDefaults()
	require.Equal(t, DefaultConfigPath, opts.ConfigPath)
	require.Equal(t, DefaultContentDir, opts.ContentDir)
	require.Equal(t, DefaultOutputDir, opts.OutputDir)
}
