package models

// Project represents a portfolio project card
type Project struct {
	Image       string   `json:"img" yaml:"img" validate:"required"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"desc" yaml:"desc"`
	GitHubURL   string   `json:"github" yaml:"github" validate:"required,url"`
	LiveURL     string   `json:"live" yaml:"live" validate:"omitempty,url"` // "" means no live demo
	Tags        []string `json:"tags" yaml:"tags"`
}

// HasLive reports whether the project has a live demo
func (p Project) HasLive() bool {
	return p.LiveURL != ""
}

// ProjectSection wraps the ordered project list with its heading
type ProjectSection struct {
	Heading  string    `json:"heading" yaml:"heading"`
	Projects []Project `json:"projects" yaml:"projects" validate:"dive"`
}
