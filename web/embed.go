// Package web embeds the stylesheet and icon sprite served under /static/.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static/css/*.css static/icons.svg
var StaticFS embed.FS

// Static returns the embedded files rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic("embedded static directory missing: " + err.Error())
	}
	return sub
}
