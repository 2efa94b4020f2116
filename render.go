package main

import (
	"strings"

	"github.com/fatih/color"
)

// palette holds the colors of each prompt segment
type palette struct {
	branch   *color.Color
	revision *color.Color
	status   *color.Color
	state    *color.Color
	fallback *color.Color
}

func newPalette(mode string) *palette {
	p := &palette{
		branch:   color.New(color.FgBlue),
		revision: color.New(color.FgYellow),
		status:   color.New(color.FgRed),
		state:    color.New(color.FgGreen),
		fallback: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{p.branch, p.revision, p.status, p.state, p.fallback} {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return p
}

// render formats a summary as `[branch @ rev status state] `
func (p *palette) render(s Summary) string {
	var rest []string
	if s.Revision != "" {
		rest = append(rest, p.revision.Sprint(s.Revision))
	}
	if s.Status != "" {
		rest = append(rest, p.status.Sprint(s.Status))
	}
	if s.State != "" {
		rest = append(rest, p.state.Sprint(s.State))
	}

	return "[" + p.branch.Sprint(s.Branch) + " @ " + strings.Join(rest, " ") + "] "
}

// noHead is printed when a repository exists but HEAD cannot be read
func (p *palette) noHead() string {
	return p.fallback.Sprint("[no head] ")
}

// malformedBranch is printed when HEAD has no short name
func (p *palette) malformedBranch() string {
	return "???"
}
