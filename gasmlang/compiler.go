package gasmlang

import (
	"github.com/reusee/braingasm/gasmvm"
)

// Compiler turns tokens into instructions.
// It owns the pending prefixes and the loop nesting stack.
type Compiler struct {
	Prefixes PrefixStack
	Loops    []*gasmvm.Loop
	Options  gasmvm.Options
}

func NewCompiler(options gasmvm.Options) *Compiler {
	return &Compiler{
		Options: options,
	}
}

func next(err error) (gasmvm.Flow, error) {
	return gasmvm.Next, err
}

func exec(name string, fn func(m *gasmvm.Machine) error) gasmvm.Instruction {
	return gasmvm.NewExec(name, func(m *gasmvm.Machine) (gasmvm.Flow, error) {
		return next(fn(m))
	})
}

func (c *Compiler) Right() gasmvm.Instruction {
	return c.Prefixes.FixParams("right", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.Right(arg.Value(m))
		return next(nil)
	}, 1)
}

func (c *Compiler) Left() gasmvm.Instruction {
	return c.Prefixes.FixParams("left", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.Left(arg.Value(m))
		return next(nil)
	}, 1)
}

func (c *Compiler) Inc() gasmvm.Instruction {
	return c.Prefixes.FixParams("inc", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.Inc(arg.Value(m))
		return next(nil)
	}, 1)
}

func (c *Compiler) Dec() gasmvm.Instruction {
	return c.Prefixes.FixParams("dec", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.Dec(arg.Value(m))
		return next(nil)
	}, 1)
}

func (c *Compiler) Multiply() gasmvm.Instruction {
	return c.Prefixes.FixParams("multiply", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.Multiply(arg.Value(m))
		return next(nil)
	}, 2)
}

func (c *Compiler) Divide() gasmvm.Instruction {
	return c.Prefixes.FixParams("divide", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		return next(m.Divide(arg.Value(m)))
	}, 2)
}

func (c *Compiler) Print() gasmvm.Instruction {
	if c.Prefixes.Empty() {
		return exec("print_cell", (*gasmvm.Machine).PrintCell)
	}
	return c.Prefixes.FixParams("print", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		return next(m.Print(arg))
	}, 0)
}

func (c *Compiler) PrintInt() gasmvm.Instruction {
	if c.Prefixes.Empty() {
		return exec("print_cell_int", func(m *gasmvm.Machine) error {
			return m.PrintInt(gasmvm.Int(m.Cell()))
		})
	}
	return c.Prefixes.FixParams("print_int", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		return next(m.PrintInt(arg))
	}, 0)
}

func (c *Compiler) Read() gasmvm.Instruction {
	if c.Prefixes.Empty() {
		return exec("read_byte", (*gasmvm.Machine).ReadInputByte)
	}
	return c.Prefixes.FixParams("read", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.Read(arg)
		return next(nil)
	}, 0)
}

func (c *Compiler) ReadInt() gasmvm.Instruction {
	return c.Prefixes.FixParams("read_int", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		return next(m.ReadInt(arg.Value(m)))
	}, 10)
}

func (c *Compiler) Compare() gasmvm.Instruction {
	return exec("compare", func(m *gasmvm.Machine) error {
		m.Compare()
		return nil
	})
}

func (c *Compiler) TapeLimit() gasmvm.Instruction {
	if c.Prefixes.Empty() {
		return exec("tape_limit", func(m *gasmvm.Machine) error {
			m.SetTapeLimit(m.DefaultTapeLimit())
			return nil
		})
	}
	return c.Prefixes.FixParams("tape_limit", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.SetTapeLimit(arg.Value(m))
		return next(nil)
	}, 0)
}

func (c *Compiler) Quit() gasmvm.Instruction {
	return c.Prefixes.FixParams("quit", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		if arg.Value(m) == 0 {
			return next(nil)
		}
		return gasmvm.QuitWith(m.Options.QuitCode), nil
	}, 1)
}

// derived-value prefixes

func (c *Compiler) Pos() {
	c.Prefixes.Push(gasmvm.Derived(gasmvm.DerivePosition))
}

func (c *Compiler) Cell() {
	c.Prefixes.Push(gasmvm.Derived(gasmvm.DeriveCell))
}

// Random takes an exclusive bound, or an inclusive min and max when two prefixes are pending.
func (c *Compiler) Random() {
	switch c.Prefixes.Len() {
	case 0:
		c.Prefixes.Push(gasmvm.Derived(gasmvm.DeriveRandom, gasmvm.Int(c.Options.RandomBound())))
	case 1:
		bound, _ := c.Prefixes.Pop()
		c.Prefixes.Push(gasmvm.Derived(gasmvm.DeriveRandom, bound))
	default:
		hi, _ := c.Prefixes.Pop()
		lo, _ := c.Prefixes.Pop()
		c.Prefixes.Push(gasmvm.Derived(gasmvm.DeriveRandom, lo, hi))
	}
}

// Predicate tests the top prefix, or the current cell without one.
func (c *Compiler) Predicate(d gasmvm.Derivation) {
	if subject, ok := c.Prefixes.Pop(); ok {
		c.Prefixes.Push(gasmvm.Derived(d, subject))
		return
	}
	c.Prefixes.Push(gasmvm.Derived(d))
}

// Divisibility is a predicate whose top prefix is the modulus when two prefixes are pending.
func (c *Compiler) Divisibility(d gasmvm.Derivation) {
	if c.Prefixes.Len() < 2 {
		c.Predicate(d)
		return
	}
	modulus, _ := c.Prefixes.Pop()
	subject, _ := c.Prefixes.Pop()
	c.Prefixes.Push(gasmvm.Derived(d, subject, modulus))
}

// loops

// LoopStart opens a loop whose check instruction lands at index start.
// A pending prefix makes it a counted loop preceded by a control push.
func (c *Compiler) LoopStart(start int) []gasmvm.Instruction {
	if c.Prefixes.Empty() {
		loop := &gasmvm.Loop{
			Kind:  gasmvm.LoopData,
			Start: start,
		}
		c.Loops = append(c.Loops, loop)
		return []gasmvm.Instruction{
			gasmvm.NewLoop(loop),
		}
	}

	push := c.Prefixes.FixParams("push_ctrl", func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		m.PushCtrl(arg.Value(m))
		return next(nil)
	}, 1)
	loop := &gasmvm.Loop{
		Kind:  gasmvm.LoopCounted,
		Start: start + 1,
	}
	c.Loops = append(c.Loops, loop)
	return []gasmvm.Instruction{
		push,
		gasmvm.NewLoop(loop),
	}
}

// LoopEnd closes the innermost loop, the jump back lands at index.
func (c *Compiler) LoopEnd(index int) (gasmvm.Instruction, error) {
	if len(c.Loops) == 0 {
		return gasmvm.Instruction{}, ErrUnmatchedClose
	}
	loop := c.Loops[len(c.Loops)-1]
	c.Loops = c.Loops[:len(c.Loops)-1]
	loop.Stop = index
	return gasmvm.NewJump(loop.Start), nil
}
