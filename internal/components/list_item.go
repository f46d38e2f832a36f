package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ListItem pairs an icon with a line of text
func ListItem(icon, text string) g.Node {
	return Div(Class("list-item flex items-start gap-4"),
		Span(Class("flex h-12 w-12 shrink-0 items-center justify-center rounded-lg bg-gray-900 text-white"),
			Icon(icon, "h-6 w-6"),
		),
		P(Class("w-full font-normal text-gray-500"), g.Text(text)),
	)
}

// Icon references a symbol in the bundled sprite
func Icon(name, class string) g.Node {
	return g.El("svg",
		Class("icon "+class),
		Aria("hidden", "true"),
		g.Attr("fill", "currentColor"),
		g.Attr("data-icon", name),
		g.El("use", Href(IconSpritePath+"#"+name)),
	)
}
