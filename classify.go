package nbconvert

import "strings"

// LineKind classifies one line of a code cell.
//
// Classification happens once per cell (see Classify) and is shared
// by both consumers: the cleaner keeps or drops lines by kind, the
// extractor drives its block state machine with it. Neither pass
// re-derives line state on its own.
type LineKind int

const (
	// LineNormal is plain code with no shell meaning.
	LineNormal LineKind = iota
	// LineString marks a line inside a triple-quoted string
	// literal, including the boundary lines themselves. String
	// content is exempt from every other check.
	LineString
	// LineMagicStart opens a cell magic whose body runs through a
	// shell: %%bash, %%sh, %%script sh, %%script bash.
	LineMagicStart
	// LineMagicEnd is any other cell magic (%%time, %%capture and
	// friends). It has no shell body but still terminates an open
	// magic block.
	LineMagicEnd
	// LineShellEscape is a "!command" line.
	LineShellEscape
	// LineProcessExec is a line containing a process execution
	// call, os.system(...) or one of the subprocess functions.
	LineProcessExec
)

func (k LineKind) String() string {
	switch k {
	case LineNormal:
		return "normal"
	case LineString:
		return "string"
	case LineMagicStart:
		return "magic-start"
	case LineMagicEnd:
		return "magic-end"
	case LineShellEscape:
		return "shell-escape"
	case LineProcessExec:
		return "process-exec"
	default:
		return "UNKNOWN"
	}
}

// Line is one classified line of a code cell.
type Line struct {
	// Text is the raw line without its trailing newline.
	Text string
	Kind LineKind
	// Denylisted is set when the line contains one of the
	// configured fragments. It is independent of Kind because the
	// consumers weigh it differently: the cleaner drops denylisted
	// lines, the extractor ignores the flag (a denylisted
	// "!curl ..." still belongs in the shell script).
	Denylisted bool
}

// shellMagics are the cell magics whose body is shell script.
// Matched by prefix, so a line like "%%shell" also counts as %%sh.
var shellMagics = []string{"%%bash", "%%sh", "%%script sh", "%%script bash"}

// processExecMarkers flag lines that spawn a subprocess from python.
// "subprocess." is deliberately wide and also hits attribute uses
// like subprocess.DEVNULL; those lines are dropped from the cleaned
// python all the same, and command recovery simply yields nothing
// for them.
var processExecMarkers = []string{"os.system(", "subprocess."}

const (
	tripleSingle = "'''"
	tripleDouble = `"""`
)

// Classify tags every line of a code cell.
//
// String state is decided first and wins over everything else: an odd
// number of triple-quote markers on a line toggles the string state,
// a complete one-line literal (a matched pair) does not. A line
// inside a string, or carrying a marker itself, is LineString and
// nothing else. The remaining kinds are decided on the
// whitespace-stripped line; the denylist is matched as a substring of
// the raw line.
func Classify(lines []string, denylist []string) []Line {
	tagged := make([]Line, len(lines))

	inString := false

	for i, text := range lines {
		nSingle := strings.Count(text, tripleSingle)
		nDouble := strings.Count(text, tripleDouble)

		boundary := nSingle > 0 || nDouble > 0
		wasInString := inString

		if nSingle%2 == 1 || nDouble%2 == 1 {
			inString = !inString
		}

		if wasInString || boundary {
			tagged[i] = Line{Text: text, Kind: LineString}
			continue
		}

		tagged[i] = Line{
			Text:       text,
			Kind:       classify(text),
			Denylisted: matchesAny(text, denylist),
		}
	}

	return tagged
}

func classify(text string) LineKind {
	stripped := strings.TrimSpace(text)

	for _, magic := range shellMagics {
		if strings.HasPrefix(stripped, magic) {
			return LineMagicStart
		}
	}
	if strings.HasPrefix(stripped, "%%") {
		return LineMagicEnd
	}

	if strings.HasPrefix(stripped, "!") {
		return LineShellEscape
	}

	for _, marker := range processExecMarkers {
		if strings.Contains(text, marker) {
			return LineProcessExec
		}
	}

	return LineNormal
}

func matchesAny(text string, fragments []string) bool {
	for _, f := range fragments {
		if f == "" {
			continue
		}
		if strings.Contains(text, f) {
			return true
		}
	}
	return false
}
