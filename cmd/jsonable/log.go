package main

import (
	"log/slog"
	"os"

	"github.com/MSyics/Jsonable/debug"

	"github.com/charmbracelet/log"
)

var (
	logHandler = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "jsonable",
		Level:  log.InfoLevel,
	})
	theLog = slog.New(logHandler)
)

// verbose routes library debug output through the command logger.
func verbose() {
	logHandler.SetLevel(log.DebugLevel)
	debug.SetLogger(theLog)
	debug.Enable(true, true, true)
}
