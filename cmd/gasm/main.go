package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/braingasm/cmds"
	"github.com/reusee/braingasm/configs"
	"github.com/reusee/braingasm/logs"
	"github.com/reusee/braingasm/modes"
	"github.com/reusee/dscope"
	"golang.org/x/term"
)

var (
	fileFlag    = cmds.Var[string]("-file", "program path, http(s) URL, or - for stdin")
	codeFlag    = cmds.Var[string]("-e", "program text")
	loadFlag    = cmds.Var[string]("-load", "restore a machine snapshot before running")
	dumpFlag    = cmds.Var[string]("-dump", "write a machine snapshot after running")
	inspectFlag = cmds.Collect[string]("-inspect", "print a starlark expression over the final machine state")
	tapFlag     = cmds.Switch("-tap", "open a starlark repl over the final machine state")
)

func main() {
	cmds.Positional(func(arg string) error {
		if *fileFlag != "" {
			return fmt.Errorf("more than one program: %s %s", *fileFlag, arg)
		}
		*fileFlag = arg
		return nil
	})
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// options resolve lazily and panic on malformed configs, so report those first
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Err(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})

	exitCode := 0
	scope.Call(func(
		interpret Interpret,
		logger logs.Logger,
	) {
		tap := *tapFlag
		if tap && !term.IsTerminal(int(os.Stdin.Fd())) {
			logger.Warn("-tap needs a terminal on stdin, skipped")
			tap = false
		}

		exitCode = interpret(context.Background(), RunArgs{
			Location:     *fileFlag,
			Code:         *codeFlag,
			LoadSnapshot: *loadFlag,
			DumpSnapshot: *dumpFlag,
			Inspect:      *inspectFlag,
			Tap:          tap,
			Input:        os.Stdin,
			Output:       os.Stdout,
			Errors:       os.Stderr,
		})
	})

	os.Exit(exitCode)
}
