// Package view renders the landing page as templ components.
package view

import (
	"context"
	"embed"
	"io"
	"io/fs"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
)

//go:embed static
var staticFiles embed.FS

// StaticFS returns the page assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// FormatCount renders a counter the way the page shows it, e.g. "+1,234".
func FormatCount(n int64) string {
	return "+" + humanize.Comma(n)
}

// pageWriter accumulates the first write error so components read linearly.
type pageWriter struct {
	w   io.Writer
	err error
}

func (p *pageWriter) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *pageWriter) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *pageWriter) attr(name, value string) {
	p.raw(" " + name + "=\"")
	p.text(value)
	p.raw("\"")
}

func (p *pageWriter) component(ctx context.Context, c templ.Component) {
	if p.err != nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}
