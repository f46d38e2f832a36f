package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"devd.dev/internal/models"
)

// Projects renders one card per project in source order
func Projects(s models.ProjectSection) g.Node {
	return Section(Class("py-28 px-8"), ID("projects"),
		Div(Class("container mx-auto mb-20 text-center"),
			H2(Class("mb-4 text-4xl font-bold"), g.Text(s.Heading)),
		),
		Div(Class("container mx-auto grid grid-cols-1 gap-x-10 gap-y-20 md:grid-cols-2 xl:grid-cols-4"),
			g.Map(s.Projects, ProjectCard),
		),
	)
}

// ProjectCard adapts a project record to the shared card.
// Tags are metadata only and are not rendered.
func ProjectCard(p models.Project) g.Node {
	return Card(CardProps{
		Image:       p.Image,
		Title:       p.Title,
		Description: p.Description,
		GitHubURL:   p.GitHubURL,
		LiveURL:     p.LiveURL,
	})
}
