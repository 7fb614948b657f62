package gasmvm

import "fmt"

// Halt reports a deliberate early termination requested by the program.
type Halt struct {
	Code int
}

func (m *Machine) Step() (Flow, error) {
	inst := m.Program.At(m.IP)
	switch inst.Kind {

	case InstExec:
		if inst.Exec == nil {
			return Next, fmt.Errorf("%w: %s without body", ErrBadInstruction, inst.Name)
		}
		return inst.Exec(m)

	case InstLoop:
		return m.enterLoop(inst.Loop)

	case InstJump:
		return JumpTo(inst.Target), nil

	}
	return Next, fmt.Errorf("%w: kind %d", ErrBadInstruction, inst.Kind)
}

func (m *Machine) enterLoop(loop *Loop) (Flow, error) {
	if loop == nil {
		return Next, fmt.Errorf("%w: loop without body", ErrBadInstruction)
	}
	switch loop.Kind {

	case LoopData:
		if m.Cell() == 0 {
			return JumpTo(loop.Stop + 1), nil
		}

	case LoopCounted:
		top := len(m.Ctrl) - 1
		if top < 0 {
			return Next, ErrEmptyControlStack
		}
		if m.Ctrl[top] <= 0 {
			m.Ctrl = m.Ctrl[:top]
			return JumpTo(loop.Stop + 1), nil
		}
		m.Ctrl[top]--

	default:
		return Next, fmt.Errorf("%w: loop kind %d", ErrBadInstruction, loop.Kind)
	}
	return Next, nil
}

// Run executes the program until the instruction pointer leaves it.
// A quit yields a Halt, a fault yields an error; both end the run.
func (m *Machine) Run(yield func(*Halt, error) bool) {
	for m.IP >= 0 && m.IP < m.Program.Len() {
		flow, err := m.Step()
		if err != nil {
			m.debug("fault", "ip", m.IP, "error", err)
			yield(nil, fmt.Errorf("ip %d (%s): %w", m.IP, m.Program.At(m.IP).Name, err))
			return
		}

		switch flow.Kind {
		case FlowNext:
			m.IP++
		case FlowJump:
			m.IP = flow.Target
		case FlowQuit:
			m.debug("quit", "ip", m.IP, "code", flow.Code)
			yield(&Halt{
				Code: flow.Code,
			}, nil)
			return
		}
	}
}
