package nbconvert

import (
	"strings"

	"github.com/Shawnzheng011019/notebook-automation/pkg/pycall"
)

// Extract collects the shell commands of a classified cell, grouped
// into blocks: one block per magic region, one block per loose
// command.
//
// The extractor runs a two-state machine over the lines. Outside a
// block, a magic start opens one, a shell escape or a process
// execution line emits its commands right away, and everything else
// is ignored. Inside a block, lines are buffered verbatim until the
// next cell magic flushes the buffer; the magic line is then handled
// again as if seen outside, so a %%bash directly inside an open
// block closes one block and opens the next.
func Extract(lines []Line, calls *pycall.Extractor) [][]string {
	blocks := make([][]string, 0)

	var buf []string
	inBlock := false

	for _, ln := range lines {
		if inBlock {
			if ln.Kind != LineMagicStart && ln.Kind != LineMagicEnd {
				buf = append(buf, ln.Text)
				continue
			}

			if len(buf) > 0 {
				blocks = append(blocks, buf)
			}
			buf = nil
			inBlock = false
			// not a continue: the magic line is re-examined below
		}

		switch ln.Kind {
		case LineMagicStart:
			inBlock = true
		case LineShellEscape:
			cmd := strings.TrimSpace(strings.TrimSpace(ln.Text)[1:])
			if cmd != "" {
				blocks = append(blocks, []string{cmd})
			}
		case LineProcessExec:
			for _, cmd := range calls.Commands(ln.Text) {
				blocks = append(blocks, []string{cmd})
			}
		}
	}

	// A cell source ending in a newline leaves one empty trailing
	// line behind; it is not part of the block.
	if len(buf) > 0 && buf[len(buf)-1] == "" {
		buf = buf[:len(buf)-1]
	}
	if len(buf) > 0 {
		blocks = append(blocks, buf)
	}

	return blocks
}
