// Package ir provides the document tree used by the composer's
// collaborators.
//
// # Overview
//
// A YAML document is represented as a tree of *Node. The tree is what a
// stream.Builder produces from a bounded run of events, and what a
// stream.Iterator replays as events. The composer uses it for exactly one
// thing: holding a non-scalar mapping key once that key has been fully
// accumulated.
//
// # Node Types
//
//   - ScalarType: a scalar; its text is in String, its presentation in Style
//   - SequenceType: ordered values in Values
//   - MappingType: keys in Fields and values in Values, in parallel
//   - AliasType: an unresolved alias; the anchor name is in String
//
// Unlike JSON-like trees, mapping keys are nodes rather than strings, so a
// key may itself be a sequence or a mapping.
//
// # Documents
//
// A Document pairs a root node with the DocumentState (version and tag
// directives, implicit markers) it was parsed under.
package ir
