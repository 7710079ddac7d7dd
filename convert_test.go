package nbconvert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvert(t *testing.T) {
	path := writeFixture(t, "lesson.ipynb", `{
 "cells": [
  {"cell_type": "markdown", "source": ["# Setup\n"]},
  {"cell_type": "code", "source": ["!pip install requests\n", "import requests\n"]},
  {"cell_type": "code", "source": ["%%bash\n", "echo one\n", "echo two\n"]},
  {"cell_type": "code", "source": ["print(requests.__version__)\n"]}
 ],
 "nbformat": 4
}`)

	res, err := Convert(path, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Script)
	assert.True(t, res.ShellScript)

	py, err := os.ReadFile(DefaultOptions().ScriptTarget(path))
	require.NoError(t, err)

	wantPy := `# This Python file was converted from lesson.ipynb
# It contains only Python code, with shell commands removed

# ---- Code Cell 2 ----
import requests


# ---- Code Cell 3 ----
echo one
echo two


# ---- Code Cell 4 ----
print(requests.__version__)
`
	if diff := cmp.Diff(wantPy, string(py)); diff != "" {
		t.Errorf("unexpected python artifact (-want +got):\n%s", diff)
	}

	sh, err := os.ReadFile(DefaultOptions().ShellTarget(path))
	require.NoError(t, err)

	wantSh := `#!/bin/bash
# This Shell script was converted from lesson.ipynb
# It contains only shell commands extracted from code cells

# ---- Commands from Code Cell 2 ----
pip install requests

# ---- Commands from Code Cell 3 ----
echo one
echo two

`
	if diff := cmp.Diff(wantSh, string(sh)); diff != "" {
		t.Errorf("unexpected shell artifact (-want +got):\n%s", diff)
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	path := writeFixture(t, "twice.ipynb", `{
 "cells": [
  {"cell_type": "code", "source": ["!pip install x\n", "import x\n"]},
  {"cell_type": "code", "source": ["%%bash\n", "echo hi\n"]}
 ],
 "nbformat": 4
}`)

	opts := DefaultOptions()
	_, err := Convert(path, opts)
	require.NoError(t, err)

	py1, err := os.ReadFile(opts.ScriptTarget(path))
	require.NoError(t, err)
	sh1, err := os.ReadFile(opts.ShellTarget(path))
	require.NoError(t, err)

	_, err = Convert(path, opts)
	require.NoError(t, err)

	py2, err := os.ReadFile(opts.ScriptTarget(path))
	require.NoError(t, err)
	sh2, err := os.ReadFile(opts.ShellTarget(path))
	require.NoError(t, err)

	assert.Equal(t, py1, py2)
	assert.Equal(t, sh1, sh2)
}

func TestConvertMarksShellExecutable(t *testing.T) {
	path := writeFixture(t, "run.ipynb", `{
 "cells": [{"cell_type": "code", "source": ["!ls\n"]}],
 "nbformat": 4
}`)

	_, err := Convert(path, DefaultOptions())
	require.NoError(t, err)

	fi, err := os.Stat(DefaultOptions().ShellTarget(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o111), fi.Mode().Perm()&0o111)
}

func TestConvertPurePython(t *testing.T) {
	path := writeFixture(t, "pure.ipynb", `{
 "cells": [
  {"cell_type": "code", "source": ["import json\n"]},
  {"cell_type": "code", "source": ["print(json.dumps({}))\n"]}
 ],
 "nbformat": 4
}`)

	res, err := Convert(path, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Script)
	assert.False(t, res.ShellScript)

	// no shell artifact at all
	_, err = os.Stat(DefaultOptions().ShellTarget(path))
	assert.True(t, os.IsNotExist(err))

	// the cell sources survive unchanged behind their markers
	py, err := os.ReadFile(DefaultOptions().ScriptTarget(path))
	require.NoError(t, err)
	assert.Contains(t, string(py), "# ---- Code Cell 1 ----\nimport json\n")
	assert.Contains(t, string(py), "# ---- Code Cell 2 ----\nprint(json.dumps({}))\n")
}

func TestConvertNoContent(t *testing.T) {
	path := writeFixture(t, "prose.ipynb", `{
 "cells": [{"cell_type": "markdown", "source": ["just words\n"]}],
 "nbformat": 4
}`)

	res, err := Convert(path, DefaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Script)
	assert.False(t, res.ShellScript)

	_, err = os.Stat(DefaultOptions().ScriptTarget(path))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(DefaultOptions().ShellTarget(path))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertNotFound(t *testing.T) {
	res, err := Convert(filepath.Join(t.TempDir(), "gone.ipynb"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Equal(t, Result{}, res)
}

func TestConvertMalformed(t *testing.T) {
	path := writeFixture(t, "broken.ipynb", "{this is not json")

	res, err := Convert(path, DefaultOptions())
	require.Error(t, err)
	assert.True(t, IsMalformedDocument(err))
	assert.Equal(t, Result{}, res)
}

func TestConvertWithoutShellHeader(t *testing.T) {
	path := writeFixture(t, "bare.ipynb", `{
 "cells": [{"cell_type": "code", "source": ["!date\n"]}],
 "nbformat": 4
}`)

	opts := DefaultOptions()
	opts.ShellHeader = false

	_, err := Convert(path, opts)
	require.NoError(t, err)

	sh, err := os.ReadFile(opts.ShellTarget(path))
	require.NoError(t, err)

	want := `# ---- Commands from Code Cell 1 ----
date

`
	assert.Equal(t, want, string(sh))
}

func TestConvertToConfiguredPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nb.ipynb")
	require.NoError(t, os.WriteFile(path, []byte(`{
 "cells": [{"cell_type": "code", "source": ["!ls\nprint(1)\n"]}],
 "nbformat": 4
}`), 0o644))

	opts := DefaultOptions()
	opts.ScriptPath = filepath.Join(dir, "out", "clean.py")
	opts.ShellPath = filepath.Join(dir, "out", "setup.sh")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "out"), 0o755))

	res, err := Convert(path, opts)
	require.NoError(t, err)
	assert.True(t, res.Script)
	assert.True(t, res.ShellScript)

	_, err = os.Stat(opts.ScriptPath)
	assert.NoError(t, err)
	_, err = os.Stat(opts.ShellPath)
	assert.NoError(t, err)
}

func TestSplit(t *testing.T) {
	nb := &Notebook{
		Name: "mixed.ipynb",
		Cells: []Cell{
			{Kind: MarkdownCell, Source: "# About\n"},
			{Kind: CodeCell, Source: "!pip install x\nimport x\n"},
			{Kind: MarkdownCell, Source: "more prose\n"},
			{Kind: CodeCell, Source: "%%bash\necho hi\n"},
			{Kind: CodeCell, Source: "x.run()\n"},
		},
	}

	cells, blocks := Split(nb, nil)

	require.Len(t, cells, 3)
	assert.Equal(t, 1, cells[0].Index)
	assert.Equal(t, "import x\n", cells[0].Text)
	assert.Equal(t, 3, cells[1].Index)
	assert.Equal(t, "echo hi\n", cells[1].Text)
	assert.Equal(t, 4, cells[2].Index)

	require.Len(t, blocks, 2)
	assert.Equal(t, 1, blocks[0].Index)
	assert.Equal(t, []string{"pip install x"}, blocks[0].Commands)
	assert.Equal(t, 3, blocks[1].Index)
	assert.Equal(t, []string{"echo hi"}, blocks[1].Commands)
}
