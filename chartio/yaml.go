// SPDX-License-Identifier: MIT

package chartio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/chartpath/chart"
	"gopkg.in/yaml.v3"
)

// chartYAML mirrors the YAML feed layout.
type chartYAML struct {
	Image     string         `yaml:"image,omitempty"`
	Positions []positionYAML `yaml:"positions"`
	Links     []linkYAML     `yaml:"links"`
}

type positionYAML struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type linkYAML struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

// ReadYAML parses a YAML chart feed.
func ReadYAML(r io.Reader) (*chart.Chart, error) {
	var doc chartYAML
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty YAML document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	c := chart.New(chart.WithImage(doc.Image))
	for i, p := range doc.Positions {
		if _, err := c.AddPosition(p.Name, p.X, p.Y); err != nil {
			return nil, fmt.Errorf("positions[%d]: %w", i, err)
		}
	}
	for i, l := range doc.Links {
		if _, err := c.AddLink(l.From, l.To, l.Cost); err != nil {
			return nil, fmt.Errorf("links[%d]: %w", i, err)
		}
	}

	return c, nil
}

// WriteYAML emits c in the YAML format.
func WriteYAML(w io.Writer, c *chart.Chart) error {
	doc := chartYAML{Image: c.Image()}
	for _, p := range c.Positions() {
		doc.Positions = append(doc.Positions, positionYAML{Name: p.Name(), X: p.X(), Y: p.Y()})
	}
	for _, l := range c.Links() {
		a, b := l.Endpoints()
		doc.Links = append(doc.Links, linkYAML{From: a.Name(), To: b.Name(), Cost: l.Cost()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
