package main

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	nbconvert "github.com/Shawnzheng011019/notebook-automation"
)

func doBatch(s settings, dir string, force bool) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !fi.IsDir() {
		return fmt.Errorf("not a directory: %q", dir)
	}

	paths, err := filepath.Glob(filepath.Join(dir, "*.ipynb"))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Printf("No notebooks found in %q\n", dir)
		return nil
	}

	opts := s.options()

	// One bad notebook must not take the rest of the batch down.
	// Each conversion reports for itself; Wait only decides the
	// exit code.
	var group errgroup.Group
	for _, path := range paths {
		path := path
		group.Go(func() error {
			return convertOne(path, opts, force)
		})
	}
	return group.Wait()
}

func convertOne(path string, opts nbconvert.Options, force bool) error {
	if !force {
		_, err := os.Stat(opts.ScriptTarget(path))
		if err == nil {
			fmt.Printf("%v skip %q, already converted\n", ellipsis, path)
			return nil
		}
	}

	res, err := nbconvert.Convert(path, opts)
	if err != nil {
		fmt.Printf("%v Failed to convert %q: %v\n", crossmark, path, err)
		return nbconvert.Wrap(err, "convert %q", path)
	}

	if !res.Script && !res.ShellScript {
		fmt.Printf("%v nothing to convert in %q\n", crossmark, path)
		return nil
	}

	if res.Script {
		fmt.Printf("%v python script for %q\n", checkmark, path)
	}
	if res.ShellScript {
		fmt.Printf("%v shell script for %q\n", checkmark, path)
	}
	return nil
}
