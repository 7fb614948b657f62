package gasmlang

import "github.com/reusee/braingasm/gasmvm"

// Primitive is an operation applied to a resolved prefix.
type Primitive func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error)

// PrefixStack holds pending prefixes in push order.
type PrefixStack struct {
	stack []gasmvm.Prefix
}

func (s *PrefixStack) Push(p gasmvm.Prefix) {
	s.stack = append(s.stack, p)
}

func (s *PrefixStack) Pop() (gasmvm.Prefix, bool) {
	if len(s.stack) == 0 {
		return gasmvm.Prefix{}, false
	}
	p := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return p, true
}

func (s *PrefixStack) Len() int {
	return len(s.stack)
}

func (s *PrefixStack) Empty() bool {
	return len(s.stack) == 0
}

// FixParams binds primitive to the top prefix, or to def if there is none.
// Derived prefixes are resolved against the machine each time the instruction runs.
func (s *PrefixStack) FixParams(name string, primitive Primitive, def int) gasmvm.Instruction {
	prefix, ok := s.Pop()
	if !ok {
		prefix = gasmvm.Int(def)
	}

	if prefix.IsLiteral() {
		return gasmvm.NewExec(name, func(m *gasmvm.Machine) (gasmvm.Flow, error) {
			return primitive(prefix, m)
		})
	}

	return gasmvm.NewExec(name, func(m *gasmvm.Machine) (gasmvm.Flow, error) {
		return primitive(prefix.Eval(m), m)
	})
}
