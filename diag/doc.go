// Package diag provides a shared, reference-counted diagnostics sink.
//
// A Diag is created with one reference. Components that keep a Diag take
// their own reference with Ref and give it back with Unref; once the last
// reference is gone, further messages are dropped.
package diag
