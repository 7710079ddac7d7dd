package fs

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Shawnzheng011019/notebook-automation/internal/logging"
)

// WriteFileAtomic writes data to a uniquely named temporary file in
// the target directory and renames it into place.
//
// An existing file at path is only ever replaced as a whole, a reader
// will not observe a half-written artifact.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.New().String())

	err := os.WriteFile(tmp, data, mode)
	if err != nil {
		return err
	}

	err = os.Rename(tmp, path)
	if err != nil {
		// Clean up behind us, the temp file is useless now.
		ignoredErr := os.Remove(tmp)
		if ignoredErr != nil {
			logging.Error("Failed to remove temp file %v", tmp)
		}
		return err
	}

	return nil
}

// MarkExecutable adds the given execute bits to the mode of the file
// at path, keeping all bits that are already set.
func MarkExecutable(path string, execBits os.FileMode) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}

	return os.Chmod(path, fi.Mode()|execBits)
}
