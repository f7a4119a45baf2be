// Package parse turns YAML, JSON or event-notation input into a stream of
// events.
//
// A Parser hands out events one at a time with Next, or whole documents with
// LoadDocument. The two may be mixed: LoadDocument consumes events up to the
// end of the next document.
//
//	p, err := parse.NewBytes(src, parse.ParseResolve(true))
//	if err != nil {
//		return err
//	}
//	for {
//		ev, err := p.Next()
//		if err == io.EOF {
//			break
//		}
//		...
//		p.Release(ev)
//	}
//
// YAML and JSON text is read with github.com/goccy/go-yaml; each document
// is converted to events when the previous one has been consumed.
package parse
