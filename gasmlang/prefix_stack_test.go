package gasmlang

import (
	"testing"

	"github.com/reusee/braingasm/gasmvm"
)

func recordPrimitive(got *[]int) Primitive {
	return func(arg gasmvm.Prefix, m *gasmvm.Machine) (gasmvm.Flow, error) {
		*got = append(*got, arg.Value(m))
		return gasmvm.Next, nil
	}
}

func TestPrefixStack(t *testing.T) {
	var s PrefixStack
	if !s.Empty() || s.Len() != 0 {
		t.Fatal()
	}
	if _, ok := s.Pop(); ok {
		t.Fatal()
	}
	s.Push(gasmvm.Int(1))
	s.Push(gasmvm.Text("a"))
	if s.Len() != 2 {
		t.Fatalf("got %v", s.Len())
	}
	p, ok := s.Pop()
	if !ok || p.Kind != gasmvm.PrefixText || p.Text != "a" {
		t.Fatalf("got %v", p)
	}
	p, ok = s.Pop()
	if !ok || p.Int != 1 {
		t.Fatalf("got %v", p)
	}
	if !s.Empty() {
		t.Fatal()
	}
}

func TestFixParamsDefault(t *testing.T) {
	var s PrefixStack
	var got []int
	inst := s.FixParams("test", recordPrimitive(&got), 7)
	if inst.Name != "test" || inst.Kind != gasmvm.InstExec {
		t.Fatalf("got %+v", inst)
	}
	m := gasmvm.NewMachine(gasmvm.NewProgram(nil), gasmvm.Options{})
	if _, err := inst.Exec(m); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 7 {
		t.Fatalf("got %v", got)
	}
}

func TestFixParamsLiteral(t *testing.T) {
	var s PrefixStack
	s.Push(gasmvm.Int(1))
	s.Push(gasmvm.Int(3))
	var got []int
	inst := s.FixParams("test", recordPrimitive(&got), 7)
	if s.Len() != 1 {
		t.Fatalf("got %v", s.Len())
	}
	m := gasmvm.NewMachine(gasmvm.NewProgram(nil), gasmvm.Options{})
	for range 2 {
		if _, err := inst.Exec(m); err != nil {
			t.Fatal(err)
		}
	}
	if len(got) != 2 || got[0] != 3 || got[1] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestFixParamsDeferred(t *testing.T) {
	var s PrefixStack
	s.Push(gasmvm.Derived(gasmvm.DerivePosition))
	var got []int
	inst := s.FixParams("test", recordPrimitive(&got), 7)
	m := gasmvm.NewMachine(gasmvm.NewProgram(nil), gasmvm.Options{})
	if _, err := inst.Exec(m); err != nil {
		t.Fatal(err)
	}
	m.Right(4)
	if _, err := inst.Exec(m); err != nil {
		t.Fatal(err)
	}
	m.Left(6)
	if _, err := inst.Exec(m); err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 4 || got[2] != -2 {
		t.Fatalf("got %v", got)
	}
}

func TestFixParamsComposed(t *testing.T) {
	var s PrefixStack
	// position, then divisibility by 4
	s.Push(gasmvm.Derived(gasmvm.DeriveParity, gasmvm.Derived(gasmvm.DerivePosition), gasmvm.Int(4)))
	var got []int
	inst := s.FixParams("test", recordPrimitive(&got), 0)
	m := gasmvm.NewMachine(gasmvm.NewProgram(nil), gasmvm.Options{})
	for range 5 {
		if _, err := inst.Exec(m); err != nil {
			t.Fatal(err)
		}
		m.Right(2)
	}
	expected := []int{1, 0, 1, 0, 1}
	for i, n := range expected {
		if got[i] != n {
			t.Fatalf("got %v", got)
		}
	}
}
