// Package nbconvert splits Jupyter notebooks into a pure python
// script and a companion shell script.
//
// Code cells often mix python with shell content: cell magics like
// %%bash, "!" escape lines, and calls such as os.system("...").
// The converter removes that content from the python view and
// collects the commands, in source order, into a shell script.
// Every piece of output carries a marker naming the notebook cell
// it came from.
package nbconvert

import (
	"strings"

	"github.com/Shawnzheng011019/notebook-automation/internal/logging"
)

// SetLogLevel sets the log level to one of "debug", "info",
// "warning" or "error". Any other value turns logging off.
func SetLogLevel(level string) {
	var lvl logging.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = logging.LevelDebug
	case "info":
		lvl = logging.LevelInfo
	case "warning":
		lvl = logging.LevelWarning
	case "error":
		lvl = logging.LevelError
	default:
		lvl = logging.LevelNone
	}
	logging.SetLevel(lvl)
}
