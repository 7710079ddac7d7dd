package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	nbconvert "github.com/Shawnzheng011019/notebook-automation"
)

func doConvert(s settings, input, pyOut, shOut string, shHeader bool) error {
	err := checkInput(input)
	if err != nil {
		return err
	}

	opts := s.options()
	opts.ScriptPath = pyOut
	opts.ShellPath = shOut
	opts.ShellHeader = shHeader

	fmt.Printf("%v convert %q\n", ellipsis, input)
	res, err := nbconvert.Convert(input, opts)
	if err != nil {
		return err
	}

	if res.Script {
		fmt.Printf("%v python script saved as %q\n", checkmark, opts.ScriptTarget(input))
	} else {
		fmt.Printf("%v no python code in %q\n", crossmark, input)
	}
	if res.ShellScript {
		fmt.Printf("%v shell script saved as %q\n", checkmark, opts.ShellTarget(input))
	} else {
		fmt.Printf("%v no shell commands in %q\n", crossmark, input)
	}

	if !res.Script && !res.ShellScript {
		return fmt.Errorf("nothing to convert in %q", input)
	}
	return nil
}

// checkInput rejects anything that is not an existing .ipynb file
// before the conversion starts.
func checkInput(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".ipynb") {
		return nbconvert.NewValidationError("input file must be a .ipynb file: %q", path)
	}

	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nbconvert.NewNotFound("input file %q", path)
		}
		return err
	}
	if fi.IsDir() {
		return nbconvert.NewValidationError("input path is a directory: %q", path)
	}

	return nil
}
