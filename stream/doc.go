// Package stream provides YAML parse events and the two event/tree
// converters used around the composer.
//
// An Event is one unit of a parse: a stream or document boundary, the start
// or end of a mapping or sequence, a scalar, or an alias. Events have a
// one-line text form, the YAML test-suite event notation:
//
//	+STR
//	+DOC ---
//	+MAP {} &a <!t>
//	=VAL :key
//	=VAL 'quoted
//	=ALI *a
//	-MAP
//	-DOC
//	-STR
//
// Event.String produces it and ParseEvent reads it back.
//
// # Builder
//
// A Builder accumulates a bounded run of events into an ir.Document. It
// either consumes a whole document (DocumentStart through DocumentEnd) or,
// after SetInDocument with single set, exactly one node; the composer uses the
// latter to turn a non-scalar mapping key into a standalone document.
//
//	b := stream.NewBuilder(stream.BuildResolve(true))
//	for {
//	    done, err := b.ProcessEvent(ev)
//	    ...
//	    if done {
//	        doc := b.TakeDocument()
//	    }
//	}
//
// With BuildResolve, aliases are replaced by copies of their anchored nodes
// and, unless disabled with BuildMergeKeys(false), "<<" merge keys are
// expanded.
//
// # Iterator
//
// An Iterator replays an ir.Document as a flat sequence of events. Boundary
// events are synthesized separately (StreamStart, DocumentStart, DocumentEnd,
// StreamEnd) so a driver can wrap any number of documents in one stream.
package stream
