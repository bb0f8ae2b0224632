package app

import (
	"fmt"
	"io"
	"os"

	"github.com/eiannone/keyboard"

	"vnfe/internal/cli"
	"vnfe/internal/common"
	"vnfe/internal/macro"
	"vnfe/pkg/config"
	"vnfe/pkg/ime"
)

type Runtime struct {
	opts       cli.Options
	cfg        config.Config
	methodName string
	macros     *macro.Table
	composer   *ime.Composer
	out        io.Writer
}

func NewRuntime(opts cli.Options) *Runtime {
	return &Runtime{opts: opts, out: os.Stdout}
}

// Prepare loads the configuration, applies command-line overrides and
// builds the composer.
func (rt *Runtime) Prepare() error {
	if err := rt.prepareConfig(); err != nil {
		return err
	}
	if err := rt.prepareMacros(); err != nil {
		return err
	}
	method, name, err := common.ResolveMethod(rt.cfg.Method)
	if err != nil {
		return err
	}
	rt.methodName = name
	rt.composer = ime.NewComposer(method, ime.Options{
		RestoreInvalid: rt.cfg.RestoreInvalid,
		Form:           rt.cfg.Form,
		Macros:         rt.macros,
	})
	return nil
}

func (rt *Runtime) Run() error {
	if err := rt.Prepare(); err != nil {
		return err
	}
	if rt.opts.LineMode {
		return TranslateLines(rt.composer, os.Stdin, rt.out)
	}
	return rt.runInteractive()
}

func (rt *Runtime) Composer() *ime.Composer { return rt.composer }

func (rt *Runtime) MethodName() string { return rt.methodName }

func (rt *Runtime) prepareConfig() error {
	cfg, err := config.Resolve(rt.opts.ConfigPath)
	if err != nil {
		return err
	}
	if rt.opts.MethodName != "" {
		cfg.Method = rt.opts.MethodName
	}
	if rt.opts.MacroPath != "" {
		cfg.MacroPath = rt.opts.MacroPath
	}
	if rt.opts.RestoreInvalid {
		cfg.RestoreInvalid = true
	}
	if rt.opts.Form != "" {
		form, err := ime.ParseForm(rt.opts.Form)
		if err != nil {
			return err
		}
		cfg.Form = form
	}
	rt.cfg = cfg
	return nil
}

func (rt *Runtime) prepareMacros() error {
	if rt.cfg.MacroPath == "" {
		return nil
	}
	table, err := macro.LoadTable(rt.cfg.MacroPath)
	if err != nil {
		return err
	}
	rt.macros = table
	return nil
}

func (rt *Runtime) runInteractive() error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Fprintf(rt.out, "vnfe [%s] - Ctrl+T toggles Vietnamese/Latin, Esc quits\r\n", rt.methodName)
	for {
		r, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			fmt.Fprint(rt.out, "\r\n")
			return nil
		case keyboard.KeyEnter:
			fmt.Fprintf(rt.out, "\r\033[K%s\r\n", rt.composer.Enter())
			continue
		case keyboard.KeySpace:
			rt.composer.Space()
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			rt.composer.Backspace()
		case keyboard.KeyTab:
			rt.composer.AppendLiteral('\t')
		case keyboard.KeyCtrlT:
			rt.composer.ToggleMode()
		default:
			if r != 0 {
				rt.composer.TypeKey(r)
			}
		}
		fmt.Fprintf(rt.out, "\r\033[K[%s] %s", rt.composer.Mode(), rt.composer.Text())
	}
}
