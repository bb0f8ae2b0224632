package cli

import (
	"fmt"
	"strings"
)

type Options struct {
	ShowHelp       bool
	ListMethods    bool
	LineMode       bool
	RestoreInvalid bool
	MethodName     string
	ConfigPath     string
	MacroPath      string
	Form           string
}

func Parse(args []string) (Options, error) {
	opts := Options{}
	for i := 1; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
		case arg == "--list-methods":
			opts.ListMethods = true
		case arg == "--line":
			opts.LineMode = true
		case arg == "--restore-invalid":
			opts.RestoreInvalid = true
		case strings.HasPrefix(arg, "--method"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.MethodName = value
			i = next
		case strings.HasPrefix(arg, "--config"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.ConfigPath = value
			i = next
		case strings.HasPrefix(arg, "--macros"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.MacroPath = value
			i = next
		case strings.HasPrefix(arg, "--form"):
			value, next, err := extractValue(arg, i, args)
			if err != nil {
				return Options{}, err
			}
			opts.Form = value
			i = next
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
	}
	return opts, nil
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `vnfe - Vietnamese Telex composer
Usage: vnfe [options]

Options:
  --method NAME           Input method: telex (default) or simple-telex
  --config PATH           Path to vnfe.ini (default: $XDG_CONFIG_HOME/vnfe/vnfe.ini)
  --macros PATH           Tab-separated macro table expanded at word boundaries
  --form NAME             Output normalization: nfc (default) or nfd
  --restore-invalid       Commit raw keystrokes for syllables that are not Vietnamese
  --line                  Convert stdin line by line instead of reading raw keys
  --list-methods          List available input methods
  -h, --help              Show this help message

Interactive keys: Ctrl+T toggles Vietnamese/Latin, Enter prints the line,
Esc or Ctrl+C quits.`
}
