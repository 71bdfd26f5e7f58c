package reader

import (
	"strings"

	"github.com/ib-77/rowmap/pkg/rowmap"
)

// splitCell explodes one cell's text into per-segment cells that share the
// originating row/column identity.
func splitCell(cell rowmap.RawCell, seps []string, opts SplitOptions) []rowmap.RawCell {
	segments := splitAny(cell.Text, seps)

	cells := make([]rowmap.RawCell, 0, len(segments))
	for _, seg := range segments {
		if opts.Trim {
			seg = strings.TrimSpace(seg)
		}
		if seg == "" && !opts.KeepEmpty {
			continue
		}
		part := cell
		part.Text = seg
		cells = append(cells, part)
	}
	return cells
}

// splitAny splits text on every occurrence of any separator, scanning left to
// right and preferring the earliest (then longest) match.
func splitAny(text string, seps []string) []string {
	var segments []string
	rest := text
	for {
		at, sep := -1, ""
		for _, s := range seps {
			if s == "" {
				continue
			}
			i := strings.Index(rest, s)
			if i < 0 {
				continue
			}
			if at < 0 || i < at || (i == at && len(s) > len(sep)) {
				at, sep = i, s
			}
		}
		if at < 0 {
			return append(segments, rest)
		}
		segments = append(segments, rest[:at])
		rest = rest[at+len(sep):]
	}
}
