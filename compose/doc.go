// Package compose tracks where in the document tree each parse event
// occurs.
//
// A Composer consumes events one at a time, maintains a Path (the stack of
// open collections with their key/value and index state) and hands every
// event to a Handler together with that Path.
//
// Mapping keys that are themselves collections are handled by spawning a
// nested Path for the key while a stream.Builder accumulates the key into a
// standalone document. Events inside such a key are delivered on the nested
// Path; once the key completes, the mapping on the outer Path records it and
// the nested Path is destroyed.
//
// Handlers return Continue, Stop or Error. Stop ends composition after the
// current event has been fully accounted for; Error ends it immediately and
// the Composer must not be used afterwards.
package compose
