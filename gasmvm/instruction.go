package gasmvm

type FlowKind uint8

const (
	FlowNext FlowKind = iota
	FlowJump
	FlowQuit
)

// Flow tells the run loop where to go after an instruction.
type Flow struct {
	Kind   FlowKind
	Target int
	Code   int
}

var Next = Flow{}

func JumpTo(ip int) Flow {
	return Flow{
		Kind:   FlowJump,
		Target: ip,
	}
}

func QuitWith(code int) Flow {
	return Flow{
		Kind: FlowQuit,
		Code: code,
	}
}

type InstructionKind uint8

const (
	InstExec InstructionKind = iota
	InstLoop
	InstJump
)

type Instruction struct {
	Kind   InstructionKind
	Name   string
	Exec   func(m *Machine) (Flow, error)
	Loop   *Loop
	Target int
}

func NewExec(name string, fn func(m *Machine) (Flow, error)) Instruction {
	return Instruction{
		Kind: InstExec,
		Name: name,
		Exec: fn,
	}
}

func NewLoop(loop *Loop) Instruction {
	return Instruction{
		Kind: InstLoop,
		Name: "loop",
		Loop: loop,
	}
}

func NewJump(target int) Instruction {
	return Instruction{
		Kind:   InstJump,
		Name:   "jump",
		Target: target,
	}
}

type LoopKind uint8

const (
	// LoopData repeats while the current cell is non-zero
	LoopData LoopKind = iota
	// LoopCounted repeats while the control stack counter is positive
	LoopCounted
)

// Loop is shared by the loop-start instruction and the compiler's nesting stack.
// Stop is set when the matching close is compiled.
type Loop struct {
	Kind  LoopKind
	Start int
	Stop  int
}

// Program is an immutable instruction sequence, indexed by instruction pointer.
type Program struct {
	instructions []Instruction
}

func NewProgram(instructions []Instruction) *Program {
	return &Program{
		instructions: append([]Instruction(nil), instructions...),
	}
}

func (p *Program) Len() int {
	if p == nil {
		return 0
	}
	return len(p.instructions)
}

func (p *Program) At(ip int) Instruction {
	return p.instructions[ip]
}
