package nbconvert

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultDenylist holds the line fragments dropped from the python
// artifact when no other denylist is configured. The defaults cover
// the dataset download lines of the course notebooks this tool was
// built around; running the cleaned script must not download the
// data again.
var DefaultDenylist = []string{
	"%%bash",
	"curl -L -o ~/Downloads/news-headlines-2024.zip",
	"https://www.kaggle.com/api/v1/datasets/download/dylanjcastillo/news-headlines-2024",
}

// DefaultExecMode is the permission set added to the shell artifact
// after a successful write (execute for owner, group and other).
const DefaultExecMode os.FileMode = 0o111

// Options control a single conversion.
//
// The zero value converts with no denylist, no shell header and no
// execute bits; DefaultOptions returns what the command line tool
// uses.
type Options struct {
	// ScriptPath is the target for the python artifact.
	// Empty means the input path with its extension replaced by
	// ".py".
	ScriptPath string
	// ShellPath is the target for the shell artifact.
	// Empty means the input path with its extension replaced by
	// ".sh".
	ShellPath string
	// ShellHeader controls the interpreter line and the two-line
	// provenance comment at the top of the shell artifact. The
	// three lines are written together or not at all.
	ShellHeader bool
	// Denylist lists fragments whose lines are dropped from the
	// python artifact, matched as substrings per line.
	Denylist []string
	// ExecMode is OR-ed onto the shell artifact's permissions.
	ExecMode os.FileMode
}

// DefaultOptions returns the options the command line tool uses when
// no flags are given.
func DefaultOptions() Options {
	return Options{
		ShellHeader: true,
		Denylist:    DefaultDenylist,
		ExecMode:    DefaultExecMode,
	}
}

// ScriptTarget returns the path the python artifact is written to
// for the given input file.
func (o Options) ScriptTarget(input string) string {
	if o.ScriptPath != "" {
		return o.ScriptPath
	}
	return replaceExt(input, ".py")
}

// ShellTarget returns the path the shell artifact is written to for
// the given input file.
func (o Options) ShellTarget(input string) string {
	if o.ShellPath != "" {
		return o.ShellPath
	}
	return replaceExt(input, ".sh")
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
