package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"devd.dev/internal/models"
)

func Hero(h models.Hero) g.Node {
	return Header(Class("bg-white p-8"), ID("hero"),
		Div(Class("container mx-auto grid gap-10 w-full grid-cols-1 items-center lg:grid-cols-2"),
			Div(
				H1(Class("mb-4 text-3xl lg:text-5xl font-bold"), lines(h.Heading)),
				P(Class("lead mb-4 text-gray-500"), g.Text(h.Lead)),
			),
			Img(
				Src(h.Image),
				Alt(h.ImageAlt),
				Width("512"),
				Height("512"),
				Class("hero-image w-full rounded-xl object-cover"),
			),
		),
	)
}

// lines joins text lines with <br> elements
func lines(ss []string) g.Group {
	nodes := make(g.Group, 0, len(ss)*2)
	for i, s := range ss {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, g.Text(s))
	}
	return nodes
}
