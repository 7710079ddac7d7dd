package nbconvert

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CellKind tells the kinds of notebook cells apart.
// Only code cells are inspected by the converter.
type CellKind int

// RawCell is the zero value: a cell that does not name its kind is
// never inspected.
const (
	RawCell CellKind = iota
	CodeCell
	MarkdownCell
)

func (k CellKind) String() string {
	switch k {
	case CodeCell:
		return "code"
	case MarkdownCell:
		return "markdown"
	case RawCell:
		return "raw"
	default:
		return "UNKNOWN"
	}
}

func (k *CellKind) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	var ck CellKind
	switch s {
	case "code":
		ck = CodeCell
	case "markdown":
		ck = MarkdownCell
	default:
		// "raw" and any vendor specific kind, none of which
		// carry code
		ck = RawCell
	}

	*k = ck
	return nil
}

func (k CellKind) MarshalJSON() ([]byte, error) {
	switch k {
	case CodeCell, MarkdownCell, RawCell:
		return json.Marshal(k.String())
	default:
		return nil, fmt.Errorf("invalid cell kind %v", int(k))
	}
}

// SourceText is the source of a notebook cell.
//
// Notebooks store it either as a single string or as a list of
// string fragments; the fragments keep their own line breaks, so
// both forms decode to the plain concatenated text.
type SourceText string

func (s *SourceText) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = SourceText(str)
		return nil
	}

	var parts []string
	err := json.Unmarshal(b, &parts)
	if err != nil {
		return err
	}

	*s = SourceText(strings.Join(parts, ""))
	return nil
}

func (s SourceText) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// Cell is a single notebook cell.
type Cell struct {
	Kind   CellKind   `json:"cell_type"`
	Source SourceText `json:"source"`
}

// Text returns the full cell source as one string.
func (c Cell) Text() string {
	return string(c.Source)
}

// Lines splits the cell source into lines.
// The split keeps a trailing empty line so that joining the result
// with "\n" reproduces Text exactly.
func (c Cell) Lines() []string {
	return strings.Split(c.Text(), "\n")
}

// Notebook is a parsed .ipynb document.
type Notebook struct {
	// Name is the file name the notebook was read from.
	// It appears verbatim in the provenance headers of the
	// generated artifacts.
	Name string `json:"-"`
	// Cells holds all cells in document order, including the
	// markdown and raw cells the converter skips.
	Cells []Cell `json:"cells"`
}

// CleanedCell is one surviving cell of the python artifact.
type CleanedCell struct {
	// Index is the position of the cell in the notebook, counted
	// over all cells (not only code cells), starting at zero.
	Index int
	// Text is the cell source with all shell content removed.
	Text string
}

// CommandBlock is one group of extracted shell commands: the body of
// a single cell magic region, or a single loose command.
type CommandBlock struct {
	// Index is the notebook position of the originating cell,
	// counted like CleanedCell.Index.
	Index int
	// Commands holds the command lines in source order.
	Commands []string
}
