package charts

import (
	"fmt"
	"strings"
)

// Request asks for one series. An empty Mode defaults to lines; a zero Color
// takes the next palette color.
type Request struct {
	Name  string
	Color Color
	Mode  Mode
}

// ParseRequest parses "Name[=color][@mode]", for example
// "France=rgb(0, 0, 255)@lines+markers".
func ParseRequest(s string) (Request, error) {
	var req Request

	if i := strings.LastIndex(s, "@"); i >= 0 {
		mode, err := ParseMode(strings.TrimSpace(s[i+1:]))
		if err != nil {
			return Request{}, err
		}
		req.Mode = mode
		s = s[:i]
	}

	name, color, hasColor := strings.Cut(s, "=")
	req.Name = strings.TrimSpace(name)
	if req.Name == "" {
		return Request{}, fmt.Errorf("series name is required")
	}

	if hasColor {
		c, err := ParseColor(color)
		if err != nil {
			return Request{}, err
		}
		req.Color = c
	}

	return req, nil
}

// ParseRequests parses each spec in order.
func ParseRequests(specs []string) ([]Request, error) {
	reqs := make([]Request, 0, len(specs))
	for _, s := range specs {
		req, err := ParseRequest(s)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s, err)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// String formats the request in ParseRequest syntax.
func (r Request) String() string {
	s := r.Name
	if !r.Color.IsZero() {
		s += "=" + r.Color.String()
	}
	if r.Mode != "" {
		s += "@" + string(r.Mode)
	}
	return s
}

// Spec describes a whole chart to be built from a table.
type Spec struct {
	Kind   Kind
	Title  string
	XTitle string
	YTitle string
	Series []Request
}
