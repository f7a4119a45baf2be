package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	traces := make([]string, 2)
	for i, name := range args {
		d, err := readInput(cc, name)
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		if err := composeInput(cfg.MainConfig, name, d, pathWriter(buf, NoColors(), nil)); err != nil {
			return err
		}
		traces[i] = buf.String()
	}
	differs, err := writeTraceDiff(cc.Out, cfg.colors(cc.Out), traces[0], traces[1], cfg.Context)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

type diffLine struct {
	op   diffpatch.Operation
	text string
}

func traceDiff(a, b string) []diffLine {
	dmp := diffpatch.New()
	ra, rb, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lines)
	var res []diffLine
	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			res = append(res, diffLine{op: d.Type, text: strings.TrimSuffix(line, "\n")})
		}
	}
	return res
}

// writeTraceDiff writes the changed lines of the two traces with ctx lines
// of unchanged context around them and reports whether they differ.
func writeTraceDiff(w io.Writer, colors *Colors, a, b string, ctx int) (bool, error) {
	lines := traceDiff(a, b)
	keep := make([]bool, len(lines))
	differs := false
	for i, l := range lines {
		if l.op == diffpatch.DiffEqual {
			continue
		}
		differs = true
		for j := max(0, i-ctx); j <= min(len(lines)-1, i+ctx); j++ {
			keep[j] = true
		}
	}
	if !differs {
		return false, nil
	}
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			if _, err := fmt.Fprintln(w, "..."); err != nil {
				return true, err
			}
			skipped = false
		}
		var out string
		switch l.op {
		case diffpatch.DiffDelete:
			out = colors.Color(DeleteColor)("- %s", l.text)
		case diffpatch.DiffInsert:
			out = colors.Color(InsertColor)("+ %s", l.text)
		default:
			out = "  " + l.text
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return true, err
		}
	}
	return true, nil
}
