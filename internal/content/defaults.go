// Package content owns the site's data: the built-in defaults, content files,
// validation, authoring checks and live reload.
package content

import "devd.dev/internal/models"

// ResumeDocumentURL is the externally hosted resume PDF
const ResumeDocumentURL = "https://cvbucket-dnp9357.s3.amazonaws.com/Devansh_Purohit_Resume.pdf"

// Default returns the built-in site content.
// Every call returns a fresh copy so callers may not alias each other's slices.
func Default() *models.Portfolio {
	return &models.Portfolio{
		Title:       "Devansh Purohit - Development Portfolio",
		Description: "Projects, previous companies and resume of Devansh Purohit, software developer.",
		Hero: models.Hero{
			Heading: []string{"Welcome to my", "Development Portfolio!"},
			Lead: "I'm Devansh, a passionate software developer based in the USA. " +
				"You'll find all my projects, achievements and information about me here.",
			Image:    "/image/profile-sq.png",
			ImageAlt: "money shot",
		},
		Clients: models.ClientSection{
			Heading: "My previous companies",
			Clients: []models.Client{
				"NBCUniversal",
				"Trashnet",
				"Dell Technologies",
				"Larsen  and Toubro Infotech",
			},
		},
		Projects: models.ProjectSection{
			Heading:  "My Projects",
			Projects: defaultProjects(),
		},
		Resume: models.ResumeSection{
			Heading: "My Resume",
			Summary: "Highly skilled Software Developer with 5+ years of experience in creating robust " +
				"websites and applications.",
			DocumentURL: ResumeDocumentURL,
			ActionLabel: "view resume",
			Items: []models.ResumeItem{
				{
					Icon: models.IconChartBar,
					Text: "Master of Science in Information Systems - New York University, Courant Institute of Mathematical Sciences",
				},
				{
					Icon: models.IconPuzzlePiece,
					Text: "Bachelor of Technology in Computer Science - Shiv Nadar University",
				},
				{
					Icon: models.IconCursorArrowRays,
					Text: "2.5 years of professional work experience in cross-functional Agile teams",
				},
			},
		},
		Tags: models.TagTaxonomy{
			"web":      "Web Development",
			"apple":    "Apple",
			"graphics": "Graphics",
		},
	}
}

// defaultProjects is in display order.
func defaultProjects() []models.Project {
	return []models.Project{
		{
			Image:       "/image/to-dos.webp",
			Title:       "To-Do App - Next.js",
			Description: "To-do App made using Next.js. Auth and data storage on Firestore, deployed on Vercel.  ",
			GitHubURL:   "https://github.com/devd-99/todo-next.git",
			LiveURL:     "https://todo-next-blue.vercel.app",
			Tags:        []string{"web"},
		},
		{
			Image:       "/image/weather.webp",
			Title:       "Weather App - Swift",
			Description: "Live weather app made using Swift. Dynamic icons based on the time of day and weather conditions.",
			GitHubURL:   "https://github.com/devd-99/weather-swift.git",
			Tags:        []string{"apple"},
		},
		{
			Image:       "/image/pagerank.webp",
			Title:       "PageRank using MapReduce",
			Description: "PageRank implemented using Hadoop's MapReduce architecture. Written in Java.",
			GitHubURL:   "https://github.com/devd-99/PageRank.git",
			Tags:        []string{"algorithms", "big data"},
		},
		{
			Image:       "/image/pbr.png",
			Title:       "Physics-Based Rendering - C++",
			Description: "Implemented Verlet, Euler, Euler Cromer methods of PBR on a cube defined manually using GLEW and GLUT libraries of the OpenGL framework.",
			GitHubURL:   "https://github.com/devd-99/pbr.git",
			Tags:        []string{"algorithms", "graphics"},
		},
		{
			Image:       "/image/niivue.png",
			Title:       "3-D Objects to Niivue",
			Description: "Modified the @niivue npm library to support addition of 3-D regions of interest on the Canvas",
			GitHubURL:   "https://github.com/devd-99/niivue-react.git",
			Tags:        []string{"web", "graphics"},
		},
		{
			Image:       "/image/gstr.webp",
			Title:       "GSTR",
			Description: "Uses a 63-point facial feature detection model to control the cursor on a Windows PC through various semantic gestures. Also has Google's StT integrated for common commands.",
			GitHubURL:   "https://github.com/devd-99/gstr.git",
			Tags:        []string{"graphics"},
		},
		{
			Image:       "/image/trashnet.webp",
			Title:       "Trashnet",
			Description: "UI Made in React for Trashnet, a waste management startup. Meant for creating Energy Credits.",
			GitHubURL:   "https://github.com/devd-99/trashnet-poc.git",
			Tags:        []string{"web, blockchain"},
		},
		{
			Image:       "/image/elementARy.png",
			Title:       "ElementARy",
			Description: "Shows different layers of a laptop in an interactive AR application using Unity and Vuforia",
			GitHubURL:   "https://github.com/devd-99/ElementARy.git",
			LiveURL:     "https://youtu.be/8IAHTaOn0-4",
			Tags:        []string{"graphics"},
		},
		{
			Image:       "/image/nasa.png",
			Title:       "Nasa SpaceApps challenge",
			Description: "AR HUD application created for the NASA SpaceApps challenge.",
			GitHubURL:   "https://github.com/devd-99/NasaSpaceAppsChallenge-AR-App.git",
			LiveURL:     "https://youtu.be/7PMTEKEfG8c",
			Tags:        []string{"graphics"},
		},
	}
}
