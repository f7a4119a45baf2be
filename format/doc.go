// Package format names the input formats a parser accepts.
//
//   - yaml: YAML 1.2 text, the default
//   - json: JSON text, parsed as the flow subset of YAML
//   - events: one event per line in YAML test-suite event notation
package format
