package correct

import (
	"strings"

	"github.com/ragaeeb/baburchi-sub001/internal/align"
)

// AlignSegments redistributes OCR segments onto the target's line
// boundaries. Segments are aligned against the target lines at line
// granularity with the same scorer the token aligner uses; each segment is
// merged into the slot of the target line it aligned with, and extra
// segments join the line they follow. The result always has one entry per
// target line; a line no segment reached stays empty.
func AlignSegments(targetLines, segments []string, opts Options) []string {
	if len(targetLines) == 0 {
		return nil
	}
	opts = opts.withDefaults()
	pairs := align.Align(targetLines, segments, nil, opts.SimilarityThreshold)

	parts := make([][]string, len(targetLines))
	slot := -1
	for _, p := range pairs {
		if !p.LeftGap {
			slot++
		}
		if p.RightGap {
			continue
		}
		at := max(slot, 0)
		parts[at] = append(parts[at], p.Right)
	}

	out := make([]string, len(targetLines))
	for i, segs := range parts {
		out[i] = strings.Join(segs, " ")
	}
	return out
}
