package nbconvert

import (
	"strings"

	"github.com/Shawnzheng011019/notebook-automation/internal/fs"
	"github.com/Shawnzheng011019/notebook-automation/internal/logging"
	"github.com/Shawnzheng011019/notebook-automation/pkg/pycall"
)

// Result reports which artifacts a conversion produced. The two
// flags are independent: a notebook without shell content yields
// only the python script, a pure shell notebook only the shell
// script, and an effectively empty notebook neither.
type Result struct {
	Script      bool
	ShellScript bool
}

// Split runs both conversion passes over the code cells of a
// notebook and returns the cleaned cells and the extracted command
// blocks. Each cell is classified once and the classification is
// shared by both passes. Indexes count over all cells of the
// notebook, in document order.
func Split(nb *Notebook, denylist []string) ([]CleanedCell, []CommandBlock) {
	calls := pycall.New()

	cells := make([]CleanedCell, 0, len(nb.Cells))
	blocks := make([]CommandBlock, 0)

	for i, cell := range nb.Cells {
		if cell.Kind != CodeCell {
			continue
		}

		tagged := Classify(cell.Lines(), denylist)

		cleaned := Clean(tagged)
		if strings.TrimSpace(cleaned) != "" {
			cells = append(cells, CleanedCell{Index: i, Text: cleaned})
		}

		for _, cmds := range Extract(tagged, calls) {
			blocks = append(blocks, CommandBlock{Index: i, Commands: cmds})
		}
	}

	return cells, blocks
}

// Convert reads the notebook at path and writes the python artifact
// and the shell artifact next to it, or to the paths configured in
// opts. An artifact without content is not written at all.
//
// Failures to load the notebook come back as an error, see
// IsNotFound and IsMalformedDocument. A failed write of one artifact
// is logged and reflected in the Result but does not abort the other
// artifact. Convert keeps no state between calls; concurrent calls
// on different documents are fine.
func Convert(path string, opts Options) (Result, error) {
	nb, err := ReadNotebook(path)
	if err != nil {
		return Result{}, err
	}

	cells, blocks := Split(nb, opts.Denylist)
	logging.Debug("Notebook %q: %v cells with python code, %v command blocks", nb.Name, len(cells), len(blocks))

	var res Result

	if len(cells) > 0 {
		target := opts.ScriptTarget(path)
		err = fs.WriteFileAtomic(target, renderScript(nb.Name, cells), artifactMode)
		if err != nil {
			logging.Error("Failed to write python artifact %q: %v", target, err)
		} else {
			logging.Info("Python artifact written to %q", target)
			res.Script = true
		}
	}

	if len(blocks) > 0 {
		target := opts.ShellTarget(path)
		err = fs.WriteFileAtomic(target, renderShellScript(nb.Name, blocks, opts.ShellHeader), artifactMode)
		if err != nil {
			logging.Error("Failed to write shell artifact %q: %v", target, err)
		} else {
			err = fs.MarkExecutable(target, opts.ExecMode)
			if err != nil {
				// the artifact is complete, just not executable
				logging.Warning("Failed to mark %q as executable: %v", target, err)
			}
			logging.Info("Shell artifact written to %q", target)
			res.ShellScript = true
		}
	}

	if len(cells) == 0 && len(blocks) == 0 {
		logging.Warning("No python code or shell commands found in %q", path)
	}

	return res, nil
}
