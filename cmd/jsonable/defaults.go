package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MSyics/Jsonable/format"

	"github.com/BurntSushi/toml"
)

// Defaults are read from a TOML file and fill in options not given on the
// command line.
type Defaults struct {
	Indent string `toml:"indent"`
	Color  *bool  `toml:"color"`
	Format string `toml:"format"`
}

func defaultsPath() string {
	if p := os.Getenv("JSONABLE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jsonable.toml")
}

func loadDefaults(path string) (*Defaults, error) {
	d := &Defaults{Indent: "  "}
	if path == "" {
		return d, nil
	}
	md, err := toml.DecodeFile(path, d)
	if errors.Is(err, fs.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading defaults %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) != 0 {
		theLog.Warn("ignoring unknown defaults", "path", path, "keys", fmt.Sprint(undec))
	}
	if d.Format != "" {
		if _, err := format.ParseFormat(d.Format); err != nil {
			return nil, fmt.Errorf("error reading defaults %s: %w", path, err)
		}
	}
	theLog.Debug("loaded defaults", "path", path)
	return d, nil
}
