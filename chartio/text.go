// SPDX-License-Identifier: MIT

package chartio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/chartpath/chart"
)

var (
	// ErrMalformed indicates a feed that does not follow the chart format.
	ErrMalformed = errors.New("chartio: malformed chart feed")

	// ErrUnrepresentable indicates a chart the text format cannot hold.
	ErrUnrepresentable = errors.New("chartio: chart cannot be written as text")
)

const (
	nodesMarker = "NODES"
	arcsMarker  = "ARCS"
)

// parse states
const (
	parseHeader = iota
	parseNodesMarker
	parseNodes
	parseArcs
)

// Read parses a text chart feed.
func Read(r io.Reader) (*chart.Chart, error) {
	scanner := bufio.NewScanner(r)

	var (
		c     *chart.Chart
		image string
		state = parseHeader
		line  int
	)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)

		switch state {
		case parseHeader:
			if fields[0] == nodesMarker && len(fields) == 1 {
				c = chart.New()
				state = parseNodes
				continue
			}
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: expected image name, got %q", ErrMalformed, line, text)
			}
			image = fields[0]
			state = parseNodesMarker
		case parseNodesMarker:
			if len(fields) != 1 || fields[0] != nodesMarker {
				return nil, fmt.Errorf("%w: line %d: expected %s, got %q", ErrMalformed, line, nodesMarker, text)
			}
			c = chart.New(chart.WithImage(image))
			state = parseNodes
		case parseNodes:
			if len(fields) == 1 && fields[0] == arcsMarker {
				state = parseArcs
				continue
			}
			if err := readPosition(c, fields); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		case parseArcs:
			if err := readLink(c, fields); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("chartio: read: %w", err)
	}

	switch state {
	case parseHeader, parseNodesMarker:
		return nil, fmt.Errorf("%w: missing %s section", ErrMalformed, nodesMarker)
	case parseNodes:
		return nil, fmt.Errorf("%w: missing %s sentinel", ErrMalformed, arcsMarker)
	}

	return c, nil
}

func readPosition(c *chart.Chart, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: position record needs name x y, got %d fields", ErrMalformed, len(fields))
	}
	x, err := parseNumber(fields[1], "x")
	if err != nil {
		return err
	}
	y, err := parseNumber(fields[2], "y")
	if err != nil {
		return err
	}
	_, err = c.AddPosition(fields[0], x, y)
	return err
}

func readLink(c *chart.Chart, fields []string) error {
	if len(fields) != 3 {
		return fmt.Errorf("%w: link record needs from to cost, got %d fields", ErrMalformed, len(fields))
	}
	cost, err := parseNumber(fields[2], "cost")
	if err != nil {
		return err
	}
	_, err = c.AddLink(fields[0], fields[1], cost)
	return err
}

func parseNumber(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrMalformed, field, s)
	}
	return v, nil
}

// ReadFile opens name and parses it as a text feed, or as YAML when the
// extension is .yaml or .yml.
func ReadFile(name string) (*chart.Chart, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if isYAML(name) {
		return ReadYAML(f)
	}
	return Read(f)
}

// Write emits c in the text format: positions sorted by name, links in
// construction order.
//
// The image name must be a single token that is neither a comment nor the
// NODES marker, otherwise ErrUnrepresentable is returned and nothing is written.
func Write(w io.Writer, c *chart.Chart) error {
	if img := c.Image(); img != "" {
		if img == nodesMarker || img[0] == '#' || len(strings.Fields(img)) != 1 || strings.TrimSpace(img) != img {
			return fmt.Errorf("%w: image name %q", ErrUnrepresentable, img)
		}
	}

	bw := bufio.NewWriter(w)
	if c.Image() != "" {
		fmt.Fprintln(bw, c.Image())
	}
	fmt.Fprintln(bw, nodesMarker)
	for _, p := range c.Positions() {
		fmt.Fprintf(bw, "%s %s %s\n", p.Name(), formatNumber(p.X()), formatNumber(p.Y()))
	}
	fmt.Fprintln(bw, arcsMarker)
	for _, l := range c.Links() {
		a, b := l.Endpoints()
		fmt.Fprintf(bw, "%s %s %s\n", a.Name(), b.Name(), formatNumber(l.Cost()))
	}

	return bw.Flush()
}

// WriteFile writes c to name, choosing the format from the extension like ReadFile.
func WriteFile(name string, c *chart.Chart) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if isYAML(name) {
		err = WriteYAML(f, c)
	} else {
		err = Write(f, c)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func isYAML(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
