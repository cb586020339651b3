package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dialogbox/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := flag.Bool("debug", false, "enable debug overlay and debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	dialogName := flag.String("dialog", "village.yaml", "dialog prefab in prefabs/")
	logFile := flag.String("logfile", "", "also write logs to this file (rotated)")
	watch := flag.Bool("watch", false, "reload the dialog when files under prefabs/ change")
	flag.Parse()

	opts := logging.FromEnv()
	if *debug {
		opts.Level = "debug"
	}
	if *logFile != "" {
		opts.File = *logFile
	}
	logger, closer := logging.New(opts)
	defer closer.Close()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("dialogbox")

	game, err := NewGame(*dialogName, *debug, *watch, logger)
	if err != nil {
		logger.Error("failed to start", "err", err)
		return 1
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game exited", "err", err)
		return 1
	}
	return 0
}
