package main

import (
	"fmt"

	"github.com/signadot/tony-format/go-compose/stream"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	PathColor ColorAttr = iota
	KeyColor
	CollectionColor
	ValueColor
	AliasColor
	BoundaryColor
	DeleteColor
	InsertColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	cs := map[ColorAttr]*color.Color{
		PathColor:       color.RGB(128, 168, 196),
		KeyColor:        color.RGB(196, 96, 16),
		CollectionColor: color.RGB(255, 0, 196),
		ValueColor:      color.RGB(8, 196, 16),
		AliasColor:      color.RGB(168, 0, 196),
		BoundaryColor:   color.RGB(96, 96, 96),
		DeleteColor:     color.New(color.FgRed),
		InsertColor:     color.New(color.FgGreen),
	}
	colors := &Colors{
		Default: fmt.Sprintf,
		Map:     map[ColorAttr]func(string, ...any) string{},
	}
	for attr, c := range cs {
		// output may go to a file with -o -color
		c.EnableColor()
		colors.Map[attr] = c.SprintfFunc()
	}
	return colors
}

func NoColors() *Colors {
	return &Colors{Default: fmt.Sprintf}
}

func (c *Colors) Color(attr ColorAttr) func(string, ...any) string {
	if f, ok := c.Map[attr]; ok {
		return f
	}
	return c.Default
}

func (c *Colors) Event(ev *stream.Event) string {
	attr := ValueColor
	switch {
	case ev.Type.IsBoundary():
		attr = BoundaryColor
	case ev.Type.IsCollectionStart(), ev.Type.IsCollectionEnd():
		attr = CollectionColor
	case ev.Type == stream.EventAlias:
		attr = AliasColor
	}
	return c.Color(attr)("%s", ev)
}
