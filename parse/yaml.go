package parse

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/token"
	"github.com/signadot/tony-format/go-compose/ir"
	"github.com/signadot/tony-format/go-compose/stream"
)

const yamlTagPrefix = "tag:yaml.org,2002:"

// yamlSource produces the events of a parsed YAML file, one document at a
// time.
type yamlSource struct {
	docs  []*ast.DocumentNode
	i     int
	queue []*stream.Event
	qi    int
	// directives seen since the last document
	pending *ir.DocumentState

	started, ended bool
	alloc          func(stream.EventType) *stream.Event
}

func (s *yamlSource) ReadEvent() (*stream.Event, error) {
	for s.qi >= len(s.queue) {
		s.queue, s.qi = s.queue[:0], 0
		if !s.started {
			s.started = true
			return s.alloc(stream.EventStreamStart), nil
		}
		if s.i >= len(s.docs) {
			if s.ended {
				return nil, io.EOF
			}
			s.ended = true
			return s.alloc(stream.EventStreamEnd), nil
		}
		doc := s.docs[s.i]
		s.i++
		if err := s.document(doc); err != nil {
			return nil, err
		}
	}
	ev := s.queue[s.qi]
	s.queue[s.qi] = nil
	s.qi++
	return ev, nil
}

func (s *yamlSource) emit(t stream.EventType, tk *token.Token) *stream.Event {
	ev := s.alloc(t)
	if tk != nil && tk.Position != nil {
		ev.Pos = stream.Pos{Line: tk.Position.Line, Column: tk.Position.Column, Offset: tk.Position.Offset}
	}
	s.queue = append(s.queue, ev)
	return ev
}

func (s *yamlSource) document(doc *ast.DocumentNode) error {
	if dir, ok := doc.Body.(*ast.DirectiveNode); ok {
		return s.directive(dir)
	}
	explicit := doc.Start != nil && doc.Start.Type == token.DocumentHeaderType
	if doc.Body == nil && !explicit {
		// nothing but comments or whitespace
		return nil
	}
	state := s.pending
	s.pending = nil
	if state == nil {
		state = &ir.DocumentState{}
	}
	state.StartImplicit = !explicit
	state.EndImplicit = doc.End == nil

	ev := s.emit(stream.EventDocumentStart, doc.Start)
	ev.Implicit = state.StartImplicit
	ev.Doc = state
	if err := s.node(doc.Body, "", "", state); err != nil {
		return err
	}
	ev = s.emit(stream.EventDocumentEnd, doc.End)
	ev.Implicit = state.EndImplicit
	return nil
}

func (s *yamlSource) directive(dir *ast.DirectiveNode) error {
	if s.pending == nil {
		s.pending = &ir.DocumentState{}
	}
	name := nodeText(dir.Name)
	switch name {
	case "YAML":
		if len(dir.Values) != 1 {
			return fmt.Errorf("%w: %%YAML takes one value", ErrDirective)
		}
		s.pending.Version = nodeText(dir.Values[0])
	case "TAG":
		if len(dir.Values) != 2 {
			return fmt.Errorf("%w: %%TAG takes a handle and a prefix", ErrDirective)
		}
		if s.pending.Tags == nil {
			s.pending.Tags = map[string]string{}
		}
		s.pending.Tags[nodeText(dir.Values[0])] = nodeText(dir.Values[1])
	}
	// other directives are reserved and ignored
	return nil
}

func (s *yamlSource) node(n ast.Node, anchor, tag string, state *ir.DocumentState) error {
	var ev *stream.Event
	switch n := n.(type) {
	case nil:
		ev = s.emit(stream.EventScalar, nil)
		ev.Style = ir.PlainStyle
	case *ast.AnchorNode:
		if anchor != "" {
			return fmt.Errorf("%w: %s: node has two anchors", ErrParse, posText(n.Start))
		}
		return s.node(n.Value, nodeText(n.Name), tag, state)
	case *ast.TagNode:
		if tag != "" {
			return fmt.Errorf("%w: %s: node has two tags", ErrParse, posText(n.Start))
		}
		return s.node(n.Value, anchor, expandTag(n.Start.Value, state), state)
	case *ast.MappingKeyNode:
		return s.node(n.Value, anchor, tag, state)
	case *ast.AliasNode:
		if anchor != "" || tag != "" {
			return fmt.Errorf("%w: %s: alias cannot have properties", ErrParse, posText(n.Start))
		}
		ev = s.emit(stream.EventAlias, n.Start)
		ev.Value = nodeText(n.Value)
		return nil
	case *ast.MappingNode:
		ev = s.emit(stream.EventMappingStart, n.Start)
		ev.Style = collectionStyle(n.IsFlowStyle)
		ev.Anchor, ev.Tag = anchor, tag
		for _, mv := range n.Values {
			if err := s.pair(mv, state); err != nil {
				return err
			}
		}
		s.emit(stream.EventMappingEnd, n.End)
		return nil
	case *ast.MappingValueNode:
		ev = s.emit(stream.EventMappingStart, n.Start)
		ev.Style = collectionStyle(n.IsFlowStyle)
		ev.Anchor, ev.Tag = anchor, tag
		if err := s.pair(n, state); err != nil {
			return err
		}
		s.emit(stream.EventMappingEnd, nil)
		return nil
	case *ast.SequenceNode:
		ev = s.emit(stream.EventSequenceStart, n.Start)
		ev.Style = collectionStyle(n.IsFlowStyle)
		ev.Anchor, ev.Tag = anchor, tag
		for _, v := range n.Values {
			if err := s.node(v, "", "", state); err != nil {
				return err
			}
		}
		s.emit(stream.EventSequenceEnd, n.End)
		return nil
	case *ast.LiteralNode:
		ev = s.emit(stream.EventScalar, n.Start)
		ev.Style = ir.LiteralStyle
		if n.Start != nil && n.Start.Type == token.FoldedType {
			ev.Style = ir.FoldedStyle
		}
		if n.Value != nil {
			ev.Value = n.Value.Value
		}
	case *ast.StringNode:
		ev = s.emit(stream.EventScalar, n.Token)
		ev.Value = n.Value
		ev.Style = ir.PlainStyle
		if n.Token != nil {
			switch n.Token.Type {
			case token.SingleQuoteType:
				ev.Style = ir.SingleQuotedStyle
			case token.DoubleQuoteType:
				ev.Style = ir.DoubleQuotedStyle
			}
		}
	case *ast.DirectiveNode:
		return fmt.Errorf("%w: %s: directive inside document", ErrDirective, posText(n.Start))
	case *ast.CommentGroupNode, *ast.CommentNode:
		return s.node(nil, anchor, tag, state)
	default:
		// numbers, booleans, nulls, infinities, merge keys: plain scalars
		tk := n.GetToken()
		ev = s.emit(stream.EventScalar, tk)
		ev.Style = ir.PlainStyle
		if tk != nil {
			ev.Value = tk.Value
		}
	}
	ev.Anchor, ev.Tag = anchor, tag
	return nil
}

func (s *yamlSource) pair(mv *ast.MappingValueNode, state *ir.DocumentState) error {
	var key ast.Node
	if mv.Key != nil {
		key = mv.Key
	}
	if err := s.node(key, "", "", state); err != nil {
		return err
	}
	return s.node(mv.Value, "", "", state)
}

func collectionStyle(flow bool) ir.Style {
	if flow {
		return ir.FlowStyle
	}
	return ir.BlockStyle
}

// nodeText returns the raw text of a name-like node: anchor and alias names,
// directive names and values.
func nodeText(n ast.Node) string {
	switch n := n.(type) {
	case nil:
		return ""
	case *ast.StringNode:
		return n.Value
	}
	if tk := n.GetToken(); tk != nil {
		return tk.Value
	}
	return ""
}

// expandTag resolves a tag shorthand against the "!!" default and any %TAG
// handles of the document.
func expandTag(tag string, state *ir.DocumentState) string {
	if strings.HasPrefix(tag, "!<") && strings.HasSuffix(tag, ">") {
		return tag[2 : len(tag)-1]
	}
	if state != nil {
		for handle, prefix := range state.Tags {
			if handle != "!" && strings.HasPrefix(tag, handle) {
				return prefix + tag[len(handle):]
			}
		}
	}
	if strings.HasPrefix(tag, "!!") {
		return yamlTagPrefix + tag[2:]
	}
	if state != nil && len(tag) > 1 {
		if prefix, ok := state.Tags["!"]; ok {
			return prefix + tag[1:]
		}
	}
	return tag
}

func posText(tk *token.Token) string {
	if tk == nil || tk.Position == nil {
		return "?"
	}
	return fmt.Sprintf("%d:%d", tk.Position.Line, tk.Position.Column)
}
