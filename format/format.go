package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	EventsFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
		"yml":    YAMLFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"e":      EventsFormat,
		"events": EventsFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case EventsFormat:
		return []byte("events"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsYAML() bool   { return f == YAMLFormat }
func (f Format) IsJSON() bool   { return f == JSONFormat }
func (f Format) IsEvents() bool { return f == EventsFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	case EventsFormat:
		return ".event"
	default:
		return ""
	}
}

// FromPath guesses the format of a file from its extension, defaulting to
// YAMLFormat.
func FromPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".events" {
		return EventsFormat
	}
	for _, f := range AllFormats() {
		if ext == f.Suffix() {
			return f
		}
	}
	return YAMLFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, JSONFormat, EventsFormat}
}
