package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "github.com/go-ini/ini"

	"vnfe/pkg/ime"
)

type Config struct {
	Method         string
	RestoreInvalid bool
	Form           ime.Form
	MacroPath      string
}

const (
	defaultMethod = "telex"
	defaultForm   = "nfc"
)

func Default() Config {
	return Config{Method: defaultMethod, Form: ime.FormNFC}
}

// Load reads an ini file. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	cfg.Method = file.Section("input").Key("method").MustString(cfg.Method)
	cfg.RestoreInvalid = file.Section("spelling").Key("restore_invalid").MustBool(cfg.RestoreInvalid)

	form, err := ime.ParseForm(file.Section("output").Key("form").MustString(defaultForm))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Form = form

	macroPath := file.Section("macro").Key("path").String()
	if macroPath != "" && !filepath.IsAbs(macroPath) {
		macroPath = filepath.Join(filepath.Dir(path), macroPath)
	}
	cfg.MacroPath = macroPath
	return cfg, nil
}

// Resolve loads the file named on the command line, or vnfe.ini from the
// user config directory when none was given.
func Resolve(cliPath string) (Config, error) {
	if cliPath != "" {
		return Load(cliPath)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return Default(), nil
	}
	return Load(filepath.Join(dir, "vnfe", "vnfe.ini"))
}
