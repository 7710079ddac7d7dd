package nbconvert

import (
	"fmt"
	"strings"
)

const artifactMode = 0o644

const (
	scriptMarker = "# ---- Code Cell %d ----\n"
	shellMarker  = "# ---- Commands from Code Cell %d ----\n"
)

// renderScript renders the python artifact.
//
// Cell numbers count over all notebook cells, so the sequence keeps
// a gap wherever a markdown cell or a fully-shell cell sat. Tools
// that split the artifact and map the pieces back onto notebook
// cells rely on exactly this numbering, do not compact it.
func renderScript(name string, cells []CleanedCell) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# This Python file was converted from %s\n", name)
	b.WriteString("# It contains only Python code, with shell commands removed\n\n")

	for i, c := range cells {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, scriptMarker, c.Index+1)
		b.WriteString(c.Text)
	}

	return []byte(b.String())
}

// renderShellScript renders the shell artifact: a marker line per
// command block, the commands one per line, and a blank line after
// each block. Blocks from the same cell repeat the cell number.
func renderShellScript(name string, blocks []CommandBlock, header bool) []byte {
	var b strings.Builder

	if header {
		b.WriteString("#!/bin/bash\n")
		fmt.Fprintf(&b, "# This Shell script was converted from %s\n", name)
		b.WriteString("# It contains only shell commands extracted from code cells\n\n")
	}

	for _, blk := range blocks {
		fmt.Fprintf(&b, shellMarker, blk.Index+1)
		for _, cmd := range blk.Commands {
			b.WriteString(cmd)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}
