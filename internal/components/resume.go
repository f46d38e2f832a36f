package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"devd.dev/internal/models"
)

func Resume(s models.ResumeSection) g.Node {
	return Section(Class("px-8 py-24"), ID("cv"),
		Div(Class("container mx-auto grid w-full grid-cols-1 items-center gap-16 lg:grid-cols-2"),
			Div(
				H2(Class("text-4xl font-bold"), g.Text(s.Heading)),
				P(Class("mb-4 mt-3 font-normal"), g.Text(s.Summary)),
				externalAction(s.DocumentURL, s.ActionLabel, "resume", "btn btn-blue",
					Icon(models.IconArrowRight, "h-3 w-3"),
				),
			),
			Div(Class("grid gap-y-6"),
				g.Map(s.Items, func(item models.ResumeItem) g.Node {
					return ListItem(item.Icon, item.Text)
				}),
			),
		),
	)
}
