package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devd.dev/internal/content"
)

func TestProjectService_GetByIndex(t *testing.T) {
	svc := NewProjectService(content.NewStore(content.Default()))

	all := svc.GetAll()
	require.Len(t, all, 9)

	p, err := svc.GetByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, "To-Do App - Next.js", p.Title)

	for _, i := range []int{-1, 9} {
		_, err := svc.GetByIndex(i)
		assert.Error(t, err, i)
	}
}

func TestProjectService_GetByIndexReturnsCopy(t *testing.T) {
	store := content.NewStore(content.Default())
	svc := NewProjectService(store)

	p, err := svc.GetByIndex(1)
	require.NoError(t, err)
	p.Title = "changed"

	assert.Equal(t, "Weather App - Swift", store.Current().Projects.Projects[1].Title)
}

func TestProjectService_FollowsStore(t *testing.T) {
	store := content.NewStore(content.Default())
	svc := NewProjectService(store)

	next := content.Default()
	next.Projects.Projects = next.Projects.Projects[:2]
	store.Replace(next)

	assert.Len(t, svc.GetAll(), 2)
}

func TestPortfolioService_Clients(t *testing.T) {
	svc := NewPortfolioService(content.NewStore(content.Default()))

	clients := svc.Clients()
	require.Len(t, clients, 4)
	assert.Equal(t, ClientView{Name: "NBCUniversal", Image: "/image/NBCUniversal.png"}, clients[0])
	assert.Equal(t, "/image/Larsen  and Toubro Infotech.png", clients[3].Image)
}

func TestPortfolioService_Tags(t *testing.T) {
	svc := NewPortfolioService(content.NewStore(content.Default()))

	assert.Equal(t, []TagView{
		{Key: "apple", Label: "Apple"},
		{Key: "graphics", Label: "Graphics"},
		{Key: "web", Label: "Web Development"},
	}, svc.Tags())
}

func TestPortfolioService_Sections(t *testing.T) {
	svc := NewPortfolioService(content.NewStore(content.Default()))

	assert.Equal(t, "/image/profile-sq.png", svc.Hero().Image)
	assert.Equal(t, content.ResumeDocumentURL, svc.Resume().DocumentURL)
	assert.Len(t, svc.Resume().Items, 3)
}

func TestProjectService_GetAllNeverNil(t *testing.T) {
	p, err := content.Decode([]byte("title: x\n"), content.FormatYAML)
	require.NoError(t, err)
	svc := NewProjectService(content.NewStore(p))

	projects := svc.GetAll()
	assert.NotNil(t, projects)
	assert.Empty(t, projects)
}
