package models

// ImageRoot is the URL prefix all content images are served under
const ImageRoot = "/image/"

// Client is a previous employer, identified only by its display name.
// The logo is expected at /image/<name>.png.
type Client string

// Name returns the display name
func (c Client) Name() string {
	return string(c)
}

// ImagePath returns the logo path. The name is used verbatim.
func (c Client) ImagePath() string {
	return ImageRoot + string(c) + ".png"
}

// ClientSection wraps the ordered client list with its heading
type ClientSection struct {
	Heading string   `json:"heading" yaml:"heading"`
	Clients []Client `json:"clients" yaml:"clients" validate:"dive,required"`
}
