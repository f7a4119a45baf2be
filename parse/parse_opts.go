package parse

import (
	"github.com/signadot/tony-format/go-compose/format"
	"github.com/signadot/tony-format/go-compose/stream"
)

type parseOpts struct {
	format    format.Format
	resolve   bool
	mergeKeys bool
}

func (o *parseOpts) buildOpts() []stream.BuildOption {
	return []stream.BuildOption{
		stream.BuildResolve(o.resolve),
		stream.BuildMergeKeys(o.mergeKeys),
	}
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseEvents() ParseOption {
	return ParseFormat(format.EventsFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParseResolve makes LoadDocument resolve aliases and, unless disabled with
// ParseMergeKeys, expand merge keys.
func ParseResolve(v bool) ParseOption {
	return func(o *parseOpts) { o.resolve = v }
}
func ParseMergeKeys(v bool) ParseOption {
	return func(o *parseOpts) { o.mergeKeys = v }
}
