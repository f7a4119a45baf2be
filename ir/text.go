package ir

import (
	"strconv"
	"strings"
)

// Text renders y on a single line in YAML flow style.
//
// Tags and anchors are written before the value they decorate. Plain scalars
// that would not survive as plain text in a flow context are double-quoted.
func (y *Node) Text() string {
	buf := &strings.Builder{}
	y.writeText(buf)
	return buf.String()
}

func (y *Node) writeText(buf *strings.Builder) {
	if y == nil {
		buf.WriteString("null")
		return
	}
	if y.Anchor != "" {
		buf.WriteString("&" + y.Anchor + " ")
	}
	if y.Tag != "" {
		buf.WriteString(y.Tag + " ")
	}
	switch y.Type {
	case AliasType:
		buf.WriteString("*" + y.String)
	case ScalarType:
		buf.WriteString(ScalarText(y.String, y.Style))
	case SequenceType:
		buf.WriteByte('[')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			v.writeText(buf)
		}
		buf.WriteByte(']')
	case MappingType:
		buf.WriteByte('{')
		for i, v := range y.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			y.Fields[i].writeText(buf)
			buf.WriteString(": ")
			v.writeText(buf)
		}
		buf.WriteByte('}')
	}
}

// ScalarText renders scalar text s with the given style in flow context.
func ScalarText(s string, style Style) string {
	switch style {
	case SingleQuotedStyle:
		if !strings.ContainsAny(s, "\n\t\r") {
			return "'" + strings.ReplaceAll(s, "'", "''") + "'"
		}
		return strconv.Quote(s)
	case DoubleQuotedStyle, LiteralStyle, FoldedStyle:
		return strconv.Quote(s)
	}
	if plainSafe(s) {
		return s
	}
	return strconv.Quote(s)
}

func plainSafe(s string) bool {
	if s == "" {
		return true
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return false
	}
	if strings.ContainsRune("-?:,[]{}#&*!|>'\"%@`", rune(s[0])) {
		if len(s) == 1 || !strings.ContainsRune("-?:", rune(s[0])) || s[1] == ' ' {
			return false
		}
	}
	if strings.ContainsAny(s, ",[]{}\n\r\t") {
		return false
	}
	if strings.Contains(s, ": ") || strings.Contains(s, " #") || strings.HasSuffix(s, ":") {
		return false
	}
	return true
}
