package nbconvert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRenderScript(t *testing.T) {
	cells := []CleanedCell{
		{Index: 1, Text: "print(1)"},
		{Index: 4, Text: "x = 2\nprint(x)"},
	}

	got := string(renderScript("nb.ipynb", cells))
	want := `# This Python file was converted from nb.ipynb
# It contains only Python code, with shell commands removed

# ---- Code Cell 2 ----
print(1)

# ---- Code Cell 5 ----
x = 2
print(x)`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected python artifact (-want +got):\n%s", diff)
	}
}

func TestRenderScriptKeepsNumberingGaps(t *testing.T) {
	// markers carry notebook cell numbers, not a running count
	cells := []CleanedCell{
		{Index: 0, Text: "a = 1"},
		{Index: 7, Text: "b = 2"},
	}

	got := string(renderScript("nb.ipynb", cells))
	assert.Contains(t, got, "# ---- Code Cell 1 ----")
	assert.Contains(t, got, "# ---- Code Cell 8 ----")
	assert.NotContains(t, got, "# ---- Code Cell 2 ----")
}

func TestRenderShellScript(t *testing.T) {
	blocks := []CommandBlock{
		{Index: 1, Commands: []string{"echo one", "echo two"}},
		{Index: 3, Commands: []string{"pip install x"}},
	}

	got := string(renderShellScript("nb.ipynb", blocks, true))
	want := `#!/bin/bash
# This Shell script was converted from nb.ipynb
# It contains only shell commands extracted from code cells

# ---- Commands from Code Cell 2 ----
echo one
echo two

# ---- Commands from Code Cell 4 ----
pip install x

`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected shell artifact (-want +got):\n%s", diff)
	}
}

func TestRenderShellScriptWithoutHeader(t *testing.T) {
	blocks := []CommandBlock{
		{Index: 0, Commands: []string{"ls"}},
	}

	got := string(renderShellScript("nb.ipynb", blocks, false))
	want := `# ---- Commands from Code Cell 1 ----
ls

`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected shell artifact (-want +got):\n%s", diff)
	}
}

func TestRenderShellScriptRepeatsCellNumber(t *testing.T) {
	// two blocks from the same cell keep the same number
	blocks := []CommandBlock{
		{Index: 2, Commands: []string{"echo one"}},
		{Index: 2, Commands: []string{"echo two"}},
	}

	got := string(renderShellScript("nb.ipynb", blocks, false))
	want := `# ---- Commands from Code Cell 3 ----
echo one

# ---- Commands from Code Cell 3 ----
echo two

`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected shell artifact (-want +got):\n%s", diff)
	}
}
