// Package components renders the portfolio as HTML. Every component is a pure
// function from content records to markup.
package components

import (
	"io"

	g "maragu.dev/gomponents"
	comps "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"devd.dev/internal/models"
)

const (
	StylesheetPath = "/static/css/site.css"
	IconSpritePath = "/static/icons.svg"
)

// Page is the full document: sections stacked in a fixed order
func Page(p *models.Portfolio) g.Node {
	return comps.HTML5(comps.HTML5Props{
		Title:       p.Title,
		Description: p.Description,
		Language:    "en",
		Head: []g.Node{
			Link(Rel("stylesheet"), Href(StylesheetPath)),
		},
		Body: []g.Node{
			Hero(p.Hero),
			Clients(p.Clients),
			Projects(p.Projects),
			Resume(p.Resume),
		},
	})
}

// Render writes the page for p to w
func Render(w io.Writer, p *models.Portfolio) error {
	return Page(p).Render(w)
}
