package site

import (
	"html"
	"strings"
	"text/template"

	"github.com/thevoxium/vimfolio/internal/config"
	siteerrors "github.com/thevoxium/vimfolio/internal/errors"
	"github.com/thevoxium/vimfolio/internal/view"
)

// ViewDiv describes one view container emitted into the editor pane.
type ViewDiv struct {
	ID      string
	Classes string
}

type pageData struct {
	Title     string
	Username  string
	BodyClass string
	CSS       string
	Script    string
	Views     []ViewDiv

	MainViewData      string
	BlogsListData     string
	BlogContentData   string
	ContentViewData   string
	SocialsViewData   string
	Themes            string
	PortfolioUsername string
	DefaultTheme      string
}

// Render produces the complete self-contained HTML document for the site.
// Output is deterministic for identical inputs.
func Render(cfg *config.SiteConfig, data *view.Data) (string, error) {
	payload, err := BuildPayload(cfg, data)
	if err != nil {
		return "", err
	}

	tpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", siteerrors.InternalError("failed to parse page template", err)
	}

	pd := pageData{
		Title:     html.EscapeString(cfg.Title),
		Username:  html.EscapeString(cfg.Username),
		BodyClass: html.EscapeString(cfg.DefaultTheme),
		CSS:       editorCSS,
		Script:    editorScript,
		Views:     viewDivs(data),

		MainViewData:      payload.MainViewData,
		BlogsListData:     payload.BlogsListData,
		BlogContentData:   payload.BlogContentData,
		ContentViewData:   payload.ContentViewData,
		SocialsViewData:   payload.SocialsViewData,
		Themes:            payload.Themes,
		PortfolioUsername: payload.PortfolioUsername,
		DefaultTheme:      payload.DefaultTheme,
	}

	var out strings.Builder
	if err := tpl.Execute(&out, pd); err != nil {
		return "", siteerrors.RenderFailed(err)
	}
	return out.String(), nil
}

func viewDivs(data *view.Data) []ViewDiv {
	ids := data.ViewIDs()
	divs := make([]ViewDiv, 0, len(ids))
	for _, id := range ids {
		classes := "view content-view"
		switch id {
		case config.ViewMain, config.ViewBlogsList:
			classes = "view"
		}
		if id == config.ViewMain {
			classes += " active"
		}
		divs = append(divs, ViewDiv{ID: id, Classes: classes})
	}
	return divs
}
