package cmds

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "0x10",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 16 {
		t.Fatalf("got %v", a)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{
		"a",
	})
	if !strings.Contains(err.Error(), "expecting argument") {
		t.Fatalf("got %v", err)
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return fmt.Errorf("failed")
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"ok", "fail"}); err == nil || err.Error() != "failed" {
		t.Fatalf("got %v", err)
	}
}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var wrap bool
	executor.Define("-wrap", Func(func() {
		wrap = true
	}))
	var paths []string
	executor.Positional(func(arg string) error {
		paths = append(paths, arg)
		return nil
	})
	if err := executor.Execute([]string{
		"a.gasm", "-wrap", "b.gasm",
	}); err != nil {
		t.Fatal(err)
	}
	if !wrap {
		t.Fatal()
	}
	if str := fmt.Sprintf("%v", paths); str != "[a.gasm b.gasm]" {
		t.Fatalf("got %s", str)
	}
	if err := executor.Execute([]string{"-unknown"}); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("got %v", err)
	}
}

type testMode int

func (m *testMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "on":
		*m = 1
	case "off":
		*m = 0
	default:
		return fmt.Errorf("bad mode: %s", text)
	}
	return nil
}

func TestTextUnmarshalerArgument(t *testing.T) {
	executor := NewExecutor()
	var mode testMode
	executor.Define("mode", Func(func(m testMode) {
		mode = m
	}))
	if err := executor.Execute([]string{"mode", "on"}); err != nil {
		t.Fatal(err)
	}
	if mode != 1 {
		t.Fatalf("got %v", mode)
	}
	if err := executor.Execute([]string{"mode", "foo"}); err == nil {
		t.Fatal()
	}
}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}
}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}
}
