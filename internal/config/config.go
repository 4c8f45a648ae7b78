// Package config loads and validates the site configuration.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
)

// Reserved view identifiers with custom assembly logic. Navigation entries
// may target these without a backing Markdown file.
const (
	ViewMain        = "main-view"
	ViewBlogsList   = "blogs-list-view"
	ViewBlogContent = "blog-content-view"
	ViewSocials     = "socials-view"
)

// SpecialViews is the set of reserved view identifiers.
var SpecialViews = map[string]bool{
	ViewBlogsList:   true,
	ViewBlogContent: true,
	ViewSocials:     true,
}

// SiteConfig represents the site configuration. It is loaded once per build
// and never mutated afterwards.
type SiteConfig struct {
	Title          string            `yaml:"site_title"`
	Username       string            `yaml:"username"`
	DefaultTheme   string            `yaml:"default_theme"`
	Themes         []Theme           `yaml:"themes"`
	Navigation     []NavigationEntry `yaml:"main_navigation"`
	SocialsHeading string            `yaml:"socials_heading"`
	Socials        []SocialLink      `yaml:"socials_links"`
}

// Theme is one entry in the runtime theme picker. Disabled entries act as
// non-selectable separators.
type Theme struct {
	Name      string `yaml:"name" json:"name"`
	ClassName string `yaml:"className" json:"className"`
	Disabled  bool   `yaml:"disabled,omitempty" json:"disabled,omitempty"`
}

// NavigationEntry is one line of the main menu. TargetView names either a
// reserved special view or a view generated from Filename.
type NavigationEntry struct {
	Text       string `yaml:"text" json:"text"`
	TargetView string `yaml:"targetView" json:"targetView"`
	Filename   string `yaml:"filename" json:"filename"`
}

// SocialLink is one entry of the socials view. DisplayText defaults to URL.
type SocialLink struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	DisplayText string `yaml:"display_text,omitempty"`
}

// Load loads configuration from the specified file
func Load(configPath string) (*SiteConfig, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, siteerrors.ConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, siteerrors.ConfigInvalid(configPath, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, siteerrors.New(siteerrors.CategoryConfig, siteerrors.SeverityFatal,
			"configuration file is empty").WithContext("path", configPath)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var cfg SiteConfig
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, siteerrors.ConfigInvalid(configPath, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *SiteConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = "Portfolio"
	}
	if c.Username == "" {
		c.Username = "user"
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = "theme-dracula"
	}
	if c.SocialsHeading == "" {
		c.SocialsHeading = "Socials & Links"
	}
	for i := range c.Socials {
		if c.Socials[i].DisplayText == "" {
			c.Socials[i].DisplayText = c.Socials[i].URL
		}
	}
}

// Validate enforces the structural invariants the assembler and the client
// script rely on. All violations are fatal.
func (c *SiteConfig) Validate() error {
	for i, theme := range c.Themes {
		if theme.Disabled {
			continue
		}
		if theme.ClassName == "" {
			return siteerrors.ValidationFailed(
				fmt.Sprintf("themes[%d]", i), "enabled theme requires a className")
		}
	}

	if len(c.Themes) > 0 {
		found := false
		for _, theme := range c.Themes {
			if theme.ClassName != c.DefaultTheme {
				continue
			}
			if theme.Disabled {
				return siteerrors.ValidationFailed(
					"default_theme", fmt.Sprintf("theme %q is a disabled separator", c.DefaultTheme))
			}
			found = true
			break
		}
		if !found {
			return siteerrors.ValidationFailed(
				"default_theme", fmt.Sprintf("theme %q is not in the theme list", c.DefaultTheme))
		}
	}

	for i, entry := range c.Navigation {
		if entry.TargetView == "" {
			return siteerrors.ValidationFailed(
				fmt.Sprintf("main_navigation[%d]", i), "targetView is required")
		}
		if !SpecialViews[entry.TargetView] && entry.Filename == "" {
			return siteerrors.ValidationFailed(
				fmt.Sprintf("main_navigation[%d]", i),
				fmt.Sprintf("view %q requires a content filename", entry.TargetView))
		}
	}

	for i, link := range c.Socials {
		if link.URL == "" {
			return siteerrors.ValidationFailed(
				fmt.Sprintf("socials_links[%d]", i), "url is required")
		}
	}

	return nil
}

// HasNavigationTarget reports whether any navigation entry targets the view.
func (c *SiteConfig) HasNavigationTarget(viewID string) bool {
	for _, entry := range c.Navigation {
		if entry.TargetView == viewID {
			return true
		}
	}
	return false
}

// loadEnvFiles loads environment variables from .env files when present so
// that ${VAR} references in the YAML resolve.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load env file", "path", envPath, "error", err)
		}
	}
}
