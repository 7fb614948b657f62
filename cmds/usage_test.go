package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
		}).Desc("BAR"),
		"baz": Sub(map[string]*Command{
			"qux": Func(func(int) {}).Desc("QUX").Args("N"),
		}).Desc("BAZ"),
	}).Desc("FOO").Alias("-foo"))

	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "-foo, -foo") && !strings.HasPrefix(lines[0], "foo, -foo") {
		t.Fatalf("got %q", lines[0])
	}
	if !strings.Contains(lines[0], "FOO") {
		t.Fatalf("got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  bar") || !strings.Contains(lines[1], "BAR") {
		t.Fatalf("got %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "    qux N") || !strings.Contains(lines[3], "QUX") {
		t.Fatalf("got %q", lines[3])
	}
}
