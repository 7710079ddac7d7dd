package nbconvert

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Shawnzheng011019/notebook-automation/internal/logging"
)

// ReadNotebook loads the notebook document at the given path.
//
// A missing file comes back as a "not found" error, a file that does
// not decode as a "malformed document" error; check with IsNotFound
// and IsMalformedDocument. A document without cells loads fine and
// is simply empty.
func ReadNotebook(path string) (*Notebook, error) {
	logging.Debug("Read notebook from %q", path)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFound("no notebook at %q", path)
		}
		return nil, err
	}
	defer f.Close()

	n := &Notebook{Name: filepath.Base(path)}
	err = json.NewDecoder(f).Decode(n)
	if err != nil {
		return nil, NewMalformedDocument("cannot decode %q: %v", path, err)
	}

	logging.Debug("Notebook %q has %v cells", n.Name, len(n.Cells))
	return n, nil
}
