// Package debug holds environment driven debug switches.
//
// Switches are read once at program start:
//
//	JSONABLE_DEBUG_LINK   log confirmation cascades in dyn
//	JSONABLE_DEBUG_BUILD  log tree building in build
//	JSONABLE_DEBUG_PARSE  log parser input in parse
package debug

import (
	"log/slog"
	"os"
	"strconv"
)

type debug struct {
	Link  bool
	Build bool
	Parse bool
}

var (
	d   *debug
	log *slog.Logger
)

func init() {
	d = &debug{}
	d.Link = boolEnv("JSONABLE_DEBUG_LINK")
	d.Build = boolEnv("JSONABLE_DEBUG_BUILD")
	d.Parse = boolEnv("JSONABLE_DEBUG_PARSE")
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Link() bool {
	return d.Link
}
func Build() bool {
	return d.Build
}
func Parse() bool {
	return d.Parse
}

// Logger returns the logger debug output is written to.
func Logger() *slog.Logger {
	return log
}

// SetLogger replaces the debug logger, e.g. to route debug output through
// a command's own handler. A nil logger is ignored.
func SetLogger(l *slog.Logger) {
	if l == nil {
		return
	}
	log = l
}

// Enable turns switches on or off at runtime.
func Enable(link, build, parse bool) {
	d.Link = link
	d.Build = build
	d.Parse = parse
}
