package gasmvm

import (
	"bufio"
	"bytes"
	"io"
)

// Input supports interleaved byte and line reads with pushback.
type Input interface {
	GetByte() (byte, error)
	GetLine() (string, error)
	Unget(data []byte)
	AtEOF() bool
}

type InputBuffer struct {
	source  *bufio.Reader
	pending []byte
}

var _ Input = new(InputBuffer)

func NewInputBuffer(source io.Reader) *InputBuffer {
	return &InputBuffer{
		source: bufio.NewReader(source),
	}
}

func (b *InputBuffer) GetByte() (byte, error) {
	if len(b.pending) > 0 {
		c := b.pending[0]
		b.pending = b.pending[1:]
		return c, nil
	}
	return b.source.ReadByte()
}

// GetLine returns the next line including its newline, if any.
func (b *InputBuffer) GetLine() (string, error) {
	var line []byte
	for len(b.pending) > 0 {
		c := b.pending[0]
		b.pending = b.pending[1:]
		line = append(line, c)
		if c == '\n' {
			return string(line), nil
		}
	}
	rest, err := b.source.ReadString('\n')
	line = append(line, rest...)
	if err == io.EOF && len(line) > 0 {
		return string(line), nil
	}
	if err != nil {
		return "", err
	}
	return string(line), nil
}

// Unget pushes data back in front of the stream.
// A bare newline is dropped.
func (b *InputBuffer) Unget(data []byte) {
	if len(bytes.TrimSuffix(data, []byte("\n"))) == 0 {
		return
	}
	pending := make([]byte, 0, len(data)+len(b.pending))
	pending = append(pending, data...)
	b.pending = append(pending, b.pending...)
}

func (b *InputBuffer) AtEOF() bool {
	if len(b.pending) > 0 {
		return false
	}
	_, err := b.source.Peek(1)
	return err != nil
}
