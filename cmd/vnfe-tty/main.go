package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"vnfe/internal/app"
	"vnfe/internal/common"
	"vnfe/pkg/ime"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vnfe-tty: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	methodName := flag.String("method", common.DefaultMethodName, fmt.Sprintf("input method (%s)", strings.Join(common.AvailableMethods(), ", ")))
	formName := flag.String("form", "nfc", "output normalization (nfc, nfd)")
	restore := flag.Bool("restore-invalid", false, "keep raw keystrokes for syllables that are not Vietnamese")
	flag.Parse()

	method, _, err := common.ResolveMethod(*methodName)
	if err != nil {
		return err
	}
	form, err := ime.ParseForm(*formName)
	if err != nil {
		return err
	}

	composer := ime.NewComposer(method, ime.Options{RestoreInvalid: *restore, Form: form})
	return app.TranslateLines(composer, os.Stdin, os.Stdout)
}
