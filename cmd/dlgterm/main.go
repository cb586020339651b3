// Command dlgterm plays a dialog prefab in the terminal.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/milk9111/dialogbox/logging"
	"github.com/milk9111/dialogbox/prefabs"
	"github.com/milk9111/dialogbox/session"
)

func main() {
	os.Exit(run())
}

func run() int {
	dialogName := flag.String("dialog", "village.yaml", "dialog prefab in prefabs/")
	logFile := flag.String("logfile", "", "write logs to this file (rotated)")
	watch := flag.Bool("watch", false, "reload the dialog when files under prefabs/ change")
	flag.Parse()

	opts := logging.FromEnv()
	if *logFile != "" {
		opts.File = *logFile
	}
	logger, closer := logging.NewFileOnly(opts)
	defer closer.Close()

	s, err := session.Open(*dialogName, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "dlgterm:", err)
		return 1
	}

	var watcher *prefabs.Watcher
	if *watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			logger.Warn("hot reload disabled", "err", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	if _, err := tea.NewProgram(newModel(s.Dialog, s, watcher, logger)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "dlgterm:", err)
		return 1
	}
	return 0
}
