package models

// Icon names available in the bundled sprite (static/icons.svg)
const (
	IconChartBar        = "chart-bar"
	IconPuzzlePiece     = "puzzle-piece"
	IconCursorArrowRays = "cursor-arrow-rays"
	IconArrowRight      = "arrow-right"
)

// Icons is the set of icon names the sprite defines
var Icons = map[string]bool{
	IconChartBar:        true,
	IconPuzzlePiece:     true,
	IconCursorArrowRays: true,
	IconArrowRight:      true,
}

// ResumeItem pairs an icon with a line of text
type ResumeItem struct {
	Icon string `json:"icon" yaml:"icon" validate:"required,icon"`
	Text string `json:"text" yaml:"text" validate:"required"`
}

// ResumeSection is the resume block: summary, document link and highlights
type ResumeSection struct {
	Heading     string       `json:"heading" yaml:"heading"`
	Summary     string       `json:"summary" yaml:"summary"`
	DocumentURL string       `json:"document_url" yaml:"document_url" validate:"required,url"`
	ActionLabel string       `json:"action_label" yaml:"action_label"`
	Items       []ResumeItem `json:"items" yaml:"items" validate:"dive"`
}
