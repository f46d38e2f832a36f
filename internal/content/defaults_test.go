package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devd.dev/internal/models"
)

func TestDefault_Sections(t *testing.T) {
	p := Default()

	assert.Equal(t, []models.Client{
		"NBCUniversal",
		"Trashnet",
		"Dell Technologies",
		"Larsen  and Toubro Infotech",
	}, p.Clients.Clients)
	assert.Len(t, p.Projects.Projects, 9)
	assert.Len(t, p.Resume.Items, 3)
	assert.Equal(t, ResumeDocumentURL, p.Resume.DocumentURL)
	assert.Equal(t, "/image/profile-sq.png", p.Hero.Image)
}

func TestDefault_LiveDemoSentinel(t *testing.T) {
	projects := Default().Projects.Projects

	first := projects[0]
	assert.Equal(t, "To-Do App - Next.js", first.Title)
	assert.Equal(t, "https://github.com/devd-99/todo-next.git", first.GitHubURL)
	assert.Equal(t, "https://todo-next-blue.vercel.app", first.LiveURL)

	second := projects[1]
	assert.Equal(t, "Weather App - Swift", second.Title)
	assert.False(t, second.HasLive())

	var withLive []string
	for _, p := range projects {
		if p.HasLive() {
			withLive = append(withLive, p.Title)
		}
	}
	assert.Equal(t, []string{"To-Do App - Next.js", "ElementARy", "Nasa SpaceApps challenge"}, withLive)
}

func TestDefault_MalformedTagPreserved(t *testing.T) {
	for _, p := range Default().Projects.Projects {
		if p.Title == "Trashnet" {
			assert.Equal(t, []string{"web, blockchain"}, p.Tags)
			return
		}
	}
	t.Fatal("Trashnet project missing")
}

func TestDefault_FreshCopy(t *testing.T) {
	a := Default()
	a.Projects.Projects[0].Title = "changed"
	a.Clients.Clients = append(a.Clients.Clients, "Extra")

	b := Default()
	require.Equal(t, "To-Do App - Next.js", b.Projects.Projects[0].Title)
	require.Len(t, b.Clients.Clients, 4)
}

func TestDefault_PassesValidation(t *testing.T) {
	assert.Empty(t, Validate(Default()))
}

func TestDefault_DescriptionsKeptVerbatim(t *testing.T) {
	first := Default().Projects.Projects[0]
	assert.Equal(t, "To-do App made using Next.js. Auth and data storage on Firestore, deployed on Vercel.  ", first.Description)
}
