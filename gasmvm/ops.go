package gasmvm

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (m *Machine) Right(n int) {
	m.Move(n)
}

func (m *Machine) Left(n int) {
	m.Move(-n)
}

func (m *Machine) Inc(n int) {
	m.SetCell(m.Cell() + n)
}

func (m *Machine) Dec(n int) {
	m.SetCell(m.Cell() - n)
}

func (m *Machine) Multiply(n int) {
	m.SetCell(m.Cell() * n)
}

func (m *Machine) Divide(n int) error {
	if n == 0 {
		return ErrDivisionByZero
	}
	m.SetCell(m.Cell() / n)
	return nil
}

// PrintValue writes value as bytes, most significant first.
func (m *Machine) PrintValue(value int) error {
	if value < 256 {
		return m.Output.PutByte(byte(value))
	}
	var buf []byte
	for value > 0 {
		buf = append(buf, byte(value%256))
		value /= 256
	}
	for i := len(buf) - 1; i >= 0; i-- {
		if err := m.Output.PutByte(buf[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *Machine) PrintCell() error {
	return m.PrintValue(m.Cell())
}

func (m *Machine) Print(p Prefix) error {
	if p.Kind == PrefixText {
		return m.Output.PutText(p.Text)
	}
	return m.PrintValue(p.Value(m))
}

func (m *Machine) PrintInt(p Prefix) error {
	if p.Kind == PrefixText {
		return m.Output.PutText(p.Text)
	}
	return m.Output.PutText(strconv.Itoa(p.Value(m)))
}

func (m *Machine) ReadInputByte() error {
	b, err := m.Input.GetByte()
	if errors.Is(err, io.EOF) {
		switch m.Options.EOF {
		case EOFZero:
			m.SetCell(0)
		case EOFNegative:
			m.SetCell(-1)
		}
		return nil
	}
	if err != nil {
		return err
	}
	m.SetCell(int(b))
	return nil
}

// Read stores a literal: integers in the current cell, text bytes on the tape from the current cell onward.
func (m *Machine) Read(p Prefix) {
	if p.Kind != PrefixText {
		m.SetCell(p.Value(m))
		return
	}
	for i := 0; i < len(p.Text); i++ {
		m.setCellAt(m.address(m.DP+i), int(p.Text[i]))
	}
}

// ReadInt reads the next line of input and parses an unsigned integer at its start.
// Unconsumed input after the digits is pushed back.
func (m *Machine) ReadInt(radix int) error {
	if radix < 2 || radix > 36 {
		return fmt.Errorf("%w: %d", ErrBadRadix, radix)
	}
	line, err := m.Input.GetLine()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	rest := strings.TrimLeft(line, " \t\r\n\v\f")
	end := 0
	for end < len(rest) && digitValue(rest[end]) < radix {
		end++
	}
	if end == 0 {
		return nil
	}
	n, err := strconv.ParseInt(rest[:end], radix, 0)
	if err != nil {
		return err
	}
	m.Input.Unget([]byte(rest[end:]))
	m.SetCell(int(n))
	return nil
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// Compare sets LastWrite to the current cell minus its left neighbour.
func (m *Machine) Compare() {
	left := 0
	if m.DP > 0 {
		left = m.Tape[m.DP-1]
	}
	m.LastWrite = m.Cell() - left
}

func (m *Machine) PushCtrl(n int) {
	m.Ctrl = append(m.Ctrl, n)
}

func (m *Machine) SetTapeLimit(limit int) {
	m.TapeLimit = limit
	m.debug("tape limit", "limit", limit, "pos", m.Pos())
}

// DefaultTapeLimit spans from the tape start to the current cell.
// Left of the origin it is negative and spans up to the origin cell.
func (m *Machine) DefaultTapeLimit() int {
	if m.Pos() >= 0 {
		return m.DP + 1
	}
	return -(m.Offset + 1)
}
