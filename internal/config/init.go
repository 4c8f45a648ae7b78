package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := SiteConfig{
		Title:        "My Portfolio",
		Username:     "user",
		DefaultTheme: "theme-dracula",
		Themes: []Theme{
			{Name: "Dracula", ClassName: "theme-dracula"},
			{Name: "Gruvbox Dark", ClassName: "theme-gruvbox"},
			{Name: "Monokai", ClassName: "theme-monokai"},
			{Name: "Tokyo Night", ClassName: "theme-tokyo-night"},
			{Name: "Catppuccin Macchiato", ClassName: "theme-catppuccin"},
			{Name: "Nightfox", ClassName: "theme-nightfox"},
			{Name: "OneNord", ClassName: "theme-onenord"},
			{Name: "-- Light --", Disabled: true},
			{Name: "One Light", ClassName: "theme-one-light"},
			{Name: "Github Light", ClassName: "theme-github-light"},
		},
		Navigation: []NavigationEntry{
			{Text: "About Me", TargetView: "about-view", Filename: "about.md"},
			{Text: "Blogs", TargetView: ViewBlogsList, Filename: "blogs"},
			{Text: "Socials & Links", TargetView: ViewSocials, Filename: "socials"},
		},
		SocialsHeading: "Socials & Links",
		Socials: []SocialLink{
			{Name: "GitHub", URL: "https://github.com/user"},
			{Name: "Email", URL: "mailto:user@example.com", DisplayText: "user@example.com"},
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
