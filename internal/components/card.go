package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CardProps is everything the card displays
type CardProps struct {
	Image       string
	Title       string
	Description string
	GitHubURL   string
	LiveURL     string // empty hides the Live action
}

// Card always shows a Github action and shows a Live action only when
// LiveURL is set. URLs are not validated.
func Card(props CardProps) g.Node {
	return Div(Class("project-card"),
		Div(Class("mx-0 mt-0 mb-6 h-48 overflow-hidden rounded-xl"),
			Img(
				Src(props.Image),
				Alt(props.Title),
				Width("768"),
				Height("768"),
				Class("h-full w-full object-cover"),
			),
		),
		Div(Class("p-0"),
			// placeholder link, goes nowhere
			A(Href("#"), Class("card-title"),
				H5(Class("mb-2 text-xl font-semibold"), g.Text(props.Title)),
			),
			P(Class("mb-6 font-normal text-gray-500"), g.Text(props.Description)),
			Div(Class("flex justify-between"),
				externalAction(props.GitHubURL, "Github", "github", "btn btn-gray"),
				g.If(props.LiveURL != "", externalAction(props.LiveURL, "Live", "live", "btn btn-blue")),
			),
		),
	)
}

// externalAction is a button-styled link that opens in a new browsing context
func externalAction(href, label, action, class string, children ...g.Node) g.Node {
	return A(
		Href(href),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Class(class),
		g.Attr("data-action", action),
		g.Text(label),
		g.Group(children),
	)
}
