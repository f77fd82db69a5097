package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	"github.com/docopt/docopt-go"

	csview "github.com/nick-f925/csv-editor"
	"github.com/nick-f925/csv-editor/store/memo"
	"github.com/nick-f925/csv-editor/util"
)

var usage = `csview - look at csv files in the terminal

Usage:
  csview <file>
  csview --init

A <file> of "-" reads csv data from stdin.

Options:
  -i --init     Write a starter layout.yaml and exit.
  -h --help     Show this screen.
  -V --version  Show version.
`

func main() {

	args, err := docopt.Parse(usage, nil, true, "csview "+csview.Version, false)
	exitIfSet(err)

	if getBool(args["--init"]) {
		initLayout()
		return
	}

	layout, err := csview.LoadLayout(csview.LayoutFile)
	exitIfSet(err)

	var logWriter io.Writer = io.Discard
	if layout.LogFile != "" {
		logWriter = util.OpenLog(layout.LogFile, 0644)
		defer util.CloseLog(logWriter)
	}

	lgr := &sabot.Sabot{Writer: logWriter}
	ctx := context.Background()

	path := getString(args["<file>"])
	fromStdin := path == "-"

	var tbl *memo.Table
	if fromStdin {
		tbl, err = memo.FromReader("stdin", os.Stdin)
	} else {
		tbl, err = memo.FromFilepath(path)
	}
	exitIfSet(err)

	lgr.Info(ctx, "starting csview", "version", csview.Version, "name", tbl.Name(),
		"rows", tbl.NumRows(), "cols", tbl.NumCols(), "width", layout.TotalWidth(tbl))

	opts := []tea.ProgramOption{}
	if fromStdin {
		// stdin carried the data, so reacquire the terminal for keys
		tty, errTty := os.OpenFile("/dev/tty", os.O_RDWR, 0)
		if errTty == nil {
			defer tty.Close()
			opts = append(opts, tea.WithInput(tty))
		}
	}

	model := csview.NewModel(ctx, tbl, &layout, lgr)
	p := tea.NewProgram(model, opts...)
	_, err = p.Run()
	exitIfSet(err)

	lgr.Info(ctx, "stopping csview")
}

func initLayout() {

	_, err := os.Stat(csview.LayoutFile)
	if err == nil {
		exitWithError(fmt.Sprintf("%s already exists", csview.LayoutFile))
	}

	layout := csview.DefaultLayout()
	exitIfSet(util.WriteConfig(&layout, csview.LayoutFile, 0644))

	fmt.Printf("wrote %s\n", csview.LayoutFile)
}

func getBool(field any) bool {
	val, _ := field.(bool)
	return val
}

func getString(field any) string {
	str, _ := field.(string)
	return str
}

func exitIfSet(errs ...error) {
	for _, err := range errs {
		if err != nil {
			exitWithError(err.Error())
		}
	}
}

func exitWithError(str string) {
	_, _ = fmt.Fprintf(os.Stderr, "fatal: %s\n", str)
	os.Exit(1)
}
