// SPDX-License-Identifier: MIT

// Package render hands routing results to whatever draws them.
//
// The algorithms never draw; they return links. Path and Links walk those links
// and feed a Renderer one link and one label at a time, in result order.
package render

import (
	"fmt"
	"io"

	"github.com/katalvlaran/chartpath/chart"
	"github.com/katalvlaran/chartpath/path"
)

// Renderer consumes the links selected by an algorithm.
type Renderer interface {
	DrawLink(l *chart.Link) error
	LabelPosition(p *chart.Position) error
}

// Path draws each link of p in order and labels both of its endpoints.
func Path(r Renderer, p *path.Path) error {
	if p.Len() == 0 {
		return r.LabelPosition(p.Origin())
	}
	return Links(r, p.Links())
}

// Links draws each link in order and labels both of its endpoints.
func Links(r Renderer, links []*chart.Link) error {
	for _, l := range links {
		if err := r.DrawLink(l); err != nil {
			return err
		}
		a, b := l.Endpoints()
		if err := r.LabelPosition(a); err != nil {
			return err
		}
		if err := r.LabelPosition(b); err != nil {
			return err
		}
	}
	return nil
}

// TextRenderer writes one line per drawn link and per label.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer returns a TextRenderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer { return &TextRenderer{w: w} }

// DrawLink implements Renderer.
func (t *TextRenderer) DrawLink(l *chart.Link) error {
	a, b := l.Endpoints()
	_, err := fmt.Fprintf(t.w, "link  %s -- %s  cost=%g\n", a.Name(), b.Name(), l.Cost())
	return err
}

// LabelPosition implements Renderer.
func (t *TextRenderer) LabelPosition(p *chart.Position) error {
	_, err := fmt.Fprintf(t.w, "label %s at (%g, %g)\n", p.Name(), p.X(), p.Y())
	return err
}
