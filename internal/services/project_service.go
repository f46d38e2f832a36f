package services

import (
	"fmt"

	"devd.dev/internal/content"
	"devd.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	store *content.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *content.Store) *ProjectService {
	return &ProjectService{store: store}
}

// GetAll returns all projects in display order, never nil
func (s *ProjectService) GetAll() []models.Project {
	projects := s.store.Current().Projects.Projects
	if projects == nil {
		return []models.Project{}
	}
	return projects
}

// GetByIndex returns the project at position i of the display order
func (s *ProjectService) GetByIndex(i int) (*models.Project, error) {
	projects := s.store.Current().Projects.Projects
	if i < 0 || i >= len(projects) {
		return nil, fmt.Errorf("project not found: %d", i)
	}
	project := projects[i]
	return &project, nil
}
