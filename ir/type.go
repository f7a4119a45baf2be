package ir

import "fmt"

type Type int

const (
	ScalarType Type = iota
	SequenceType
	MappingType
	AliasType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType:   "Scalar",
		SequenceType: "Sequence",
		MappingType:  "Mapping",
		AliasType:    "Alias",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Scalar":   ScalarType,
		"Sequence": SequenceType,
		"Mapping":  MappingType,
		"Alias":    AliasType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func (t Type) IsLeaf() bool {
	switch t {
	case SequenceType, MappingType:
		return false
	default:
		return true
	}
}

// Style is the presentation style of a scalar or collection.
type Style int

const (
	AnyStyle Style = iota
	PlainStyle
	SingleQuotedStyle
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
	BlockStyle
	FlowStyle
)

func (s Style) String() string {
	switch s {
	case PlainStyle:
		return "plain"
	case SingleQuotedStyle:
		return "single-quoted"
	case DoubleQuotedStyle:
		return "double-quoted"
	case LiteralStyle:
		return "literal"
	case FoldedStyle:
		return "folded"
	case BlockStyle:
		return "block"
	case FlowStyle:
		return "flow"
	default:
		return "any"
	}
}

// IsQuoted reports whether a scalar with this style was quoted in the
// source; quoted scalars never act as merge keys.
func (s Style) IsQuoted() bool {
	return s == SingleQuotedStyle || s == DoubleQuotedStyle
}
