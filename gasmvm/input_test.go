package gasmvm

import (
	"io"
	"strings"
	"testing"
)

func TestInputBuffer(t *testing.T) {
	buf := NewInputBuffer(strings.NewReader("hey\nthere"))

	b, err := buf.GetByte()
	if err != nil {
		t.Fatal(err)
	}
	if b != 'h' {
		t.Fatalf("got %q", b)
	}
	line, err := buf.GetLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "ey\n" {
		t.Fatalf("got %q", line)
	}

	buf.Unget([]byte("A"))
	if b, _ := buf.GetByte(); b != 'A' {
		t.Fatalf("got %q", b)
	}
	buf.Unget([]byte{66})
	if b, _ := buf.GetByte(); b != 66 {
		t.Fatalf("got %q", b)
	}
	buf.Unget([]byte("\n"))

	if b, _ := buf.GetByte(); b != 't' {
		t.Fatalf("got %q", b)
	}
	line, err = buf.GetLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "here" {
		t.Fatalf("got %q", line)
	}
	if !buf.AtEOF() {
		t.Fatal("should be at eof")
	}

	if _, err := buf.GetByte(); err != io.EOF {
		t.Fatalf("got %v", err)
	}
	if _, err := buf.GetLine(); err != io.EOF {
		t.Fatalf("got %v", err)
	}
}

func TestInputBufferUngetLine(t *testing.T) {
	buf := NewInputBuffer(strings.NewReader("c\n"))
	buf.Unget([]byte("ab"))
	if buf.AtEOF() {
		t.Fatal()
	}
	line, err := buf.GetLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "abc\n" {
		t.Fatalf("got %q", line)
	}
}
