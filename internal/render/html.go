package render

import (
	"fmt"
	"html/template"
	"io"
)

// HTMLRenderer writes the lookup page: search box, submit control and the
// panel selected by the view.
type HTMLRenderer struct {
	tmpl *template.Template
}

var _ Renderer = (*HTMLRenderer)(nil)

func NewHTMLRenderer(tmpl *template.Template) *HTMLRenderer {
	return &HTMLRenderer{tmpl: tmpl}
}

func (r *HTMLRenderer) Render(w io.Writer, view View) error {
	if err := r.tmpl.Execute(w, view); err != nil {
		return fmt.Errorf("tmpl.Execute > %w", err)
	}
	return nil
}
