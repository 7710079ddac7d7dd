package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	nbconvert "github.com/Shawnzheng011019/notebook-automation"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

func main() {
	s := loadSettings()

	app := kingpin.New("nbconvert", "Split Jupyter notebooks into python scripts and shell scripts")
	app.HelpFlag.Short('h')
	verbose := app.Flag("verbose", "More detailed log output").Short('v').Bool()

	convert := app.Command("convert", "Convert a single notebook").Default()
	var (
		input      = convert.Arg("notebook", "Path of the .ipynb file").Required().String()
		pyOut      = convert.Flag("python", "Path for the python script").Short('p').String()
		shOut      = convert.Flag("shell", "Path for the shell script").Short('s').String()
		noShHeader = convert.Flag("no-sh-header", "Leave out the interpreter and provenance header of the shell script").Bool()
	)

	batch := app.Command("batch", "Convert every notebook in a directory")
	var (
		dir   = batch.Arg("dir", "Directory with .ipynb files").Required().String()
		force = batch.Flag("force", "Convert notebooks even if the python script already exists").Short('f').Bool()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if *verbose {
		nbconvert.SetLogLevel("debug")
	} else {
		nbconvert.SetLogLevel(s.logLevel)
	}

	var err error
	switch command {
	case "convert":
		err = doConvert(s, *input, *pyOut, *shOut, !*noShHeader)
	case "batch":
		err = doBatch(s, *dir, *force)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
