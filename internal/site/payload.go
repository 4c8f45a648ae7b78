package site

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/thevoxium/vimfolio/internal/config"
	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
	"github.com/thevoxium/vimfolio/internal/view"
)

// Payload holds the per-name JSON strings embedded into the page script.
type Payload struct {
	MainViewData      string
	BlogsListData     string
	BlogContentData   string
	ContentViewData   string
	SocialsViewData   string
	Themes            string
	PortfolioUsername string
	DefaultTheme      string
}

// BuildPayload serializes the assembled view data into the JSON strings the
// client script reads at startup. Nil slices and maps are emitted as empty
// JSON collections so the client always receives arrays and objects.
func BuildPayload(cfg *config.SiteConfig, data *view.Data) (*Payload, error) {
	mainMenu := data.MainMenu
	if mainMenu == nil {
		mainMenu = []config.NavigationEntry{}
	}
	blogIndex := data.BlogIndex
	if blogIndex == nil {
		blogIndex = []view.BlogIndexEntry{}
	}
	blogContent := data.BlogContent
	if blogContent == nil {
		blogContent = map[string][]view.Line{}
	}
	contentViews := data.ContentViews
	if contentViews == nil {
		contentViews = map[string][]view.Line{}
	}
	socials := data.Socials
	if socials == nil {
		socials = []view.Line{}
	}
	themes := cfg.Themes
	if themes == nil {
		themes = []config.Theme{}
	}

	var p Payload
	fields := []struct {
		dst   *string
		value any
	}{
		{&p.MainViewData, mainMenu},
		{&p.BlogsListData, blogIndex},
		{&p.BlogContentData, blogContent},
		{&p.ContentViewData, contentViews},
		{&p.SocialsViewData, socials},
		{&p.Themes, themes},
		{&p.PortfolioUsername, cfg.Username},
		{&p.DefaultTheme, cfg.DefaultTheme},
	}
	for _, f := range fields {
		encoded, err := encodeScriptJSON(f.value)
		if err != nil {
			return nil, siteerrors.InternalError("failed to serialize embedded data", err)
		}
		*f.dst = encoded
	}
	return &p, nil
}

// encodeScriptJSON marshals v without HTML escaping so non-ASCII text stays
// readable in the output, then escapes any literal "</script>" which would
// otherwise terminate the enclosing script element early.
func encodeScriptJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	out := strings.TrimRight(buf.String(), "\n")
	return strings.ReplaceAll(out, "</script>", `<\/script>`), nil
}
