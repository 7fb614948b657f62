package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/braingasm/debugs"
	"github.com/reusee/braingasm/gasmlang"
	"github.com/reusee/braingasm/gasmvm"
	"github.com/reusee/braingasm/logs"
	"github.com/reusee/braingasm/sources"
)

type RunArgs struct {
	// Location is a path, URL or "-", ignored when Code is set
	Location string
	Code     string

	LoadSnapshot string
	DumpSnapshot string
	Inspect      []string
	Tap          bool

	Input  io.Reader
	Output io.Writer
	Errors io.Writer
}

// Interpret compiles and runs one program, returning the process exit code.
type Interpret func(ctx context.Context, args RunArgs) int

func (Module) Interpret(
	load sources.Load,
	options gasmvm.Options,
	logger logs.Logger,
	newSpan logs.NewSpan,
	inspect debugs.Inspect,
	tap debugs.Tap,
) Interpret {
	return func(ctx context.Context, args RunArgs) int {
		fail := func(err error) int {
			fmt.Fprintln(args.Errors, err)
			return 1
		}

		source := &sources.Source{
			Name: "<code>",
			Code: args.Code,
		}
		if args.Code == "" {
			if args.Location == "" {
				return fail(errors.New("no program given"))
			}
			var err error
			source, err = load(ctx, args.Location)
			if err != nil {
				return fail(err)
			}
		}

		ctx, _ = newSpan(ctx, "run", "source", source.Name)

		program, err := gasmlang.CompileString(source.Name, source.Code, options)
		if err != nil {
			return fail(err)
		}
		logger.DebugContext(ctx, "compiled", "instructions", program.Len())

		m := gasmvm.NewMachine(program, options)
		m.Logger = logger
		output := bufio.NewWriter(args.Output)
		m.Input = gasmvm.NewInputBuffer(flushBeforeRead{
			Reader: args.Input,
			output: output,
		})
		m.Output = gasmvm.NewWriterOutput(output)

		if args.LoadSnapshot != "" {
			if err := restore(m, args.LoadSnapshot); err != nil {
				return fail(err)
			}
			logger.DebugContext(ctx, "restored", "path", args.LoadSnapshot, "pos", m.Pos())
		}

		exitCode := 0
		for halt, err := range m.Run {
			if err != nil {
				logger.DebugContext(ctx, "fault", "error", err)
				fmt.Fprintln(args.Errors, logs.WrapSpan(ctx, err))
				exitCode = 1
				break
			}
			if halt != nil {
				exitCode = halt.Code
			}
		}

		if err := output.Flush(); err != nil {
			return fail(err)
		}

		if args.DumpSnapshot != "" {
			if err := dump(m, args.DumpSnapshot); err != nil {
				return fail(err)
			}
		}

		for _, expr := range args.Inspect {
			value, err := inspect(ctx, m, expr)
			if err != nil {
				return fail(err)
			}
			fmt.Fprintln(args.Errors, value)
		}

		if args.Tap {
			tap(ctx, source.Name, m)
		}

		return exitCode
	}
}

// flushBeforeRead makes pending output, such as a prompt, visible before the program blocks on input.
type flushBeforeRead struct {
	io.Reader
	output *bufio.Writer
}

func (f flushBeforeRead) Read(p []byte) (int, error) {
	if err := f.output.Flush(); err != nil {
		return 0, err
	}
	return f.Reader.Read(p)
}

func restore(m *gasmvm.Machine, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Restore(bufio.NewReader(f))
}

func dump(m *gasmvm.Machine, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()
	return m.Snapshot(f)
}
