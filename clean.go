package nbconvert

import "strings"

// Clean renders the python-only view of a classified cell.
//
// String lines always survive, normal lines survive unless they are
// denylisted, and everything with shell meaning is dropped. Only the
// magic directive line itself is removed: the body of a %%bash cell
// is classified line by line, and a body line that reads like plain
// code stays in the python artifact. Downstream tools work on the
// cleaned text as it is, so this keeps the long-standing shape of
// the output.
func Clean(lines []Line) string {
	kept := make([]string, 0, len(lines))

	for _, ln := range lines {
		switch ln.Kind {
		case LineString:
			kept = append(kept, ln.Text)
		case LineNormal:
			if !ln.Denylisted {
				kept = append(kept, ln.Text)
			}
		}
	}

	return strings.Join(kept, "\n")
}
