package stream

import (
	"fmt"
	"strings"

	"github.com/signadot/tony-format/go-compose/ir"
)

// String returns e in YAML test-suite event notation.
func (e *Event) String() string {
	buf := &strings.Builder{}
	switch e.Type {
	case EventStreamStart:
		buf.WriteString("+STR")
	case EventStreamEnd:
		buf.WriteString("-STR")
	case EventDocumentStart:
		buf.WriteString("+DOC")
		if !e.Implicit {
			buf.WriteString(" ---")
		}
	case EventDocumentEnd:
		buf.WriteString("-DOC")
		if !e.Implicit {
			buf.WriteString(" ...")
		}
	case EventMappingStart:
		buf.WriteString("+MAP")
		if e.Style == ir.FlowStyle {
			buf.WriteString(" {}")
		}
		e.writeProps(buf)
	case EventMappingEnd:
		buf.WriteString("-MAP")
	case EventSequenceStart:
		buf.WriteString("+SEQ")
		if e.Style == ir.FlowStyle {
			buf.WriteString(" []")
		}
		e.writeProps(buf)
	case EventSequenceEnd:
		buf.WriteString("-SEQ")
	case EventScalar:
		buf.WriteString("=VAL")
		e.writeProps(buf)
		buf.WriteByte(' ')
		buf.WriteByte(styleIndicator(e.Style))
		buf.WriteString(escapeValue(e.Value))
	case EventAlias:
		buf.WriteString("=ALI *")
		buf.WriteString(e.Value)
	default:
		buf.WriteString("???")
	}
	return buf.String()
}

func (e *Event) writeProps(buf *strings.Builder) {
	if e.Anchor != "" {
		buf.WriteString(" &" + e.Anchor)
	}
	if e.Tag != "" {
		buf.WriteString(" <" + e.Tag + ">")
	}
}

func styleIndicator(s ir.Style) byte {
	switch s {
	case ir.SingleQuotedStyle:
		return '\''
	case ir.DoubleQuotedStyle:
		return '"'
	case ir.LiteralStyle:
		return '|'
	case ir.FoldedStyle:
		return '>'
	default:
		return ':'
	}
}

func indicatorStyle(c byte) (ir.Style, bool) {
	switch c {
	case ':':
		return ir.PlainStyle, true
	case '\'':
		return ir.SingleQuotedStyle, true
	case '"':
		return ir.DoubleQuotedStyle, true
	case '|':
		return ir.LiteralStyle, true
	case '>':
		return ir.FoldedStyle, true
	}
	return ir.AnyStyle, false
}

var valueEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"\x00", "\\0",
	"\b", "\\b",
	"\n", "\\n",
	"\r", "\\r",
	"\t", "\\t",
)

var valueUnescaper = strings.NewReplacer(
	"\\\\", "\\",
	"\\0", "\x00",
	"\\b", "\b",
	"\\n", "\n",
	"\\r", "\r",
	"\\t", "\t",
)

func escapeValue(v string) string {
	return valueEscaper.Replace(v)
}

func unescapeValue(v string) string {
	return valueUnescaper.Replace(v)
}

// ParseEvent parses one line of event notation.
func ParseEvent(line string) (*Event, error) {
	line = strings.TrimRight(line, "\r\n")
	if len(line) < 4 {
		return nil, &Error{Msg: fmt.Sprintf("short event %q", line)}
	}
	head, rest := line[:4], strings.TrimPrefix(line[4:], " ")
	ev := &Event{}
	switch head {
	case "+STR":
		ev.Type = EventStreamStart
	case "-STR":
		ev.Type = EventStreamEnd
	case "+DOC":
		ev.Type = EventDocumentStart
		ev.Implicit = !strings.HasPrefix(rest, "---")
		ev.Doc = &ir.DocumentState{StartImplicit: ev.Implicit}
	case "-DOC":
		ev.Type = EventDocumentEnd
		ev.Implicit = !strings.HasPrefix(rest, "...")
	case "+MAP", "+SEQ":
		ev.Type = EventMappingStart
		flow := "{}"
		if head == "+SEQ" {
			ev.Type = EventSequenceStart
			flow = "[]"
		}
		ev.Style = ir.BlockStyle
		if strings.HasPrefix(rest, flow) {
			ev.Style = ir.FlowStyle
			rest = strings.TrimPrefix(rest[2:], " ")
		}
		var err error
		if rest, err = ev.readProps(rest); err != nil {
			return nil, err
		}
		if rest != "" {
			return nil, &Error{Msg: fmt.Sprintf("trailing text %q", rest)}
		}
	case "-MAP":
		ev.Type = EventMappingEnd
	case "-SEQ":
		ev.Type = EventSequenceEnd
	case "=VAL":
		ev.Type = EventScalar
		var err error
		if rest, err = ev.readProps(rest); err != nil {
			return nil, err
		}
		if rest == "" {
			return nil, &Error{Msg: "scalar without style indicator"}
		}
		style, ok := indicatorStyle(rest[0])
		if !ok {
			return nil, &Error{Msg: fmt.Sprintf("bad style indicator %q", rest[0])}
		}
		ev.Style = style
		ev.Value = unescapeValue(rest[1:])
	case "=ALI":
		ev.Type = EventAlias
		if !strings.HasPrefix(rest, "*") || len(rest) == 1 {
			return nil, &Error{Msg: fmt.Sprintf("bad alias %q", rest)}
		}
		ev.Value = rest[1:]
	default:
		return nil, &Error{Msg: fmt.Sprintf("unknown event %q", head)}
	}
	return ev, nil
}

// readProps consumes the optional "&anchor" and "<tag>" properties.
func (e *Event) readProps(rest string) (string, error) {
	for rest != "" {
		switch rest[0] {
		case '&':
			name, tail, _ := strings.Cut(rest[1:], " ")
			if name == "" {
				return "", &Error{Msg: "empty anchor"}
			}
			e.Anchor = name
			rest = tail
		case '<':
			i := strings.IndexByte(rest, '>')
			if i < 0 {
				return "", &Error{Msg: fmt.Sprintf("unterminated tag in %q", rest)}
			}
			e.Tag = rest[1:i]
			rest = strings.TrimPrefix(rest[i+1:], " ")
		default:
			return rest, nil
		}
	}
	return rest, nil
}
