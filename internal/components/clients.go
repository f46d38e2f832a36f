package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"devd.dev/internal/models"
)

// Clients renders one logo per client, in list order. A name without a
// matching asset yields a broken image; nothing here checks for that.
func Clients(s models.ClientSection) g.Node {
	return Section(Class("px-8 py-28"), ID("clients"),
		Div(Class("container mx-auto text-center"),
			H3(Class("mb-8 text-3xl font-bold"), g.Text(s.Heading)),
			Div(Class("flex flex-wrap items-center justify-center gap-6"),
				g.Map(s.Clients, clientLogo),
			),
		),
	)
}

func clientLogo(c models.Client) g.Node {
	return Img(
		Src(c.ImagePath()),
		Alt(c.Name()),
		Width("768"),
		Height("768"),
		Class("w-40"),
	)
}
