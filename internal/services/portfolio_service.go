package services

import (
	"sort"

	"devd.dev/internal/content"
	"devd.dev/internal/models"
)

// ClientView is a client with its resolved logo path
type ClientView struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// TagView is one taxonomy entry
type TagView struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// PortfolioService exposes the non-project sections of the current content
type PortfolioService struct {
	store *content.Store
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(store *content.Store) *PortfolioService {
	return &PortfolioService{store: store}
}

// Current returns the whole current snapshot
func (s *PortfolioService) Current() *models.Portfolio {
	return s.store.Current()
}

// Hero returns the hero section
func (s *PortfolioService) Hero() models.Hero {
	return s.store.Current().Hero
}

// Clients returns the clients in display order
func (s *PortfolioService) Clients() []ClientView {
	clients := s.store.Current().Clients.Clients
	views := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		views = append(views, ClientView{Name: c.Name(), Image: c.ImagePath()})
	}
	return views
}

// Resume returns the resume section
func (s *PortfolioService) Resume() models.ResumeSection {
	return s.store.Current().Resume
}

// Tags returns the taxonomy sorted by key
func (s *PortfolioService) Tags() []TagView {
	tags := s.store.Current().Tags
	views := make([]TagView, 0, len(tags))
	for key, label := range tags {
		views = append(views, TagView{Key: key, Label: label})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Key < views[j].Key })
	return views
}
