// Command dlgcheck parses dialog scripts and reports problems.
//
//	dlgcheck [-fmt] [-copy] file.dlg...
//
// With -fmt the canonical form of each script is printed. With -copy the
// canonical form of the last script is also placed on the clipboard.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.design/x/clipboard"

	"github.com/milk9111/dialogbox/dialog"
	"github.com/milk9111/dialogbox/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run checks the files named in args and returns the exit status: 0 when all
// scripts parse (and, with -strict, validate), 1 on failure, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dlgcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.Bool("fmt", false, "print the canonical form of each script")
	copyOut := fs.Bool("copy", false, "copy the canonical form of the last script to the clipboard")
	strict := fs.Bool("strict", false, "exit non-zero on validation issues, not only parse errors")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: dlgcheck [flags] file.dlg...\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	opts := logging.FromEnv()
	opts.Prefix = "dlgcheck"
	logger, closer := logging.NewTo(stderr, opts)
	defer closer.Close()

	var last string
	failed := false
	for _, path := range fs.Args() {
		res, err := check(path, *format, stdout)
		if err != nil {
			failed = true
			var perr *dialog.ParseError
			if errors.As(err, &perr) {
				logger.Error("parse failed", "file", path, "line", perr.Line, "reason", perr.Reason)
			} else {
				logger.Error("check failed", "file", path, "err", err)
			}
			continue
		}
		for _, issue := range res.issues {
			logger.Warn("issue", "file", path, "screen", issue.Screen, "msg", issue.Message)
		}
		if *strict && len(res.issues) > 0 {
			failed = true
		}
		logger.Info("ok", "file", path, "screens", res.screens, "issues", len(res.issues))
		last = res.formatted
	}

	if *copyOut && last != "" {
		if err := clipboard.Init(); err != nil {
			logger.Error("clipboard unavailable", "err", err)
			return 1
		}
		<-clipboard.Write(clipboard.FmtText, []byte(last))
		logger.Info("copied to clipboard")
	}

	if failed {
		return 1
	}
	return 0
}

type result struct {
	screens   int
	issues    []dialog.Issue
	formatted string
}

func check(path string, printFormatted bool, out io.Writer) (result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return result{}, err
	}
	return checkSource(path, string(data), printFormatted, out)
}

func checkSource(name, src string, printFormatted bool, out io.Writer) (result, error) {
	script, err := dialog.Parse(src)
	if err != nil {
		return result{}, err
	}

	res := result{
		screens:   script.Len(),
		issues:    dialog.Validate(script),
		formatted: dialog.Format(script),
	}
	if printFormatted {
		if _, err := io.WriteString(out, res.formatted); err != nil {
			return res, fmt.Errorf("%s: %w", name, err)
		}
	}
	return res, nil
}
