package models

// Hero is the banner at the top of the page
type Hero struct {
	Heading  []string `json:"heading" yaml:"heading" validate:"min=1"` // rendered with line breaks between entries
	Lead     string   `json:"lead" yaml:"lead"`
	Image    string   `json:"image" yaml:"image" validate:"required"`
	ImageAlt string   `json:"image_alt" yaml:"image_alt"`
}

// TagTaxonomy maps short tag keys to display labels.
// Rendering never consults it; project tags are free-form.
type TagTaxonomy map[string]string

// Portfolio is the complete content of the site
type Portfolio struct {
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	Hero        Hero           `json:"hero" yaml:"hero"`
	Clients     ClientSection  `json:"clients" yaml:"clients"`
	Projects    ProjectSection `json:"projects" yaml:"projects"`
	Resume      ResumeSection  `json:"resume" yaml:"resume"`
	Tags        TagTaxonomy    `json:"tags,omitempty" yaml:"tags,omitempty"`
}
