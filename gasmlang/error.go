package gasmlang

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnmatchedClose     = errors.New("unmatched `]`")
	ErrUnmatchedOpen      = errors.New("unmatched `[`")
	ErrUnterminatedString = errors.New("unterminated string")
)

// ParsingError locates a compile error in the source.
type ParsingError struct {
	Err error
	Pos Pos
}

func (p ParsingError) Error() string {
	if p.Pos.Source == nil {
		return fmt.Sprintf("%v [line %d, col %d]", p.Err, p.Pos.Line, p.Pos.Column)
	}
	msg := fmt.Sprintf("%v at %s:%d:%d\n", p.Err, p.Pos.Source.Name, p.Pos.Line, p.Pos.Column)
	if p.Pos.Line < 1 || p.Pos.Line > len(p.Pos.Source.Lines) {
		return msg
	}
	line := p.Pos.Source.Lines[p.Pos.Line-1]
	return msg + line + "\n" + caret(line, p.Pos.Column) + "\n"
}

// caret points at a 1-based rune column of line.
// Programs are operator characters, so every rune other than a tab takes one cell;
// tabs are kept so the terminal aligns them the same way in both lines.
func caret(line string, column int) string {
	var sb strings.Builder
	for i, r := range []rune(line) {
		if i >= column-1 {
			break
		}
		if r == '\t' {
			sb.WriteRune('\t')
		} else {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('^')
	return sb.String()
}

func (p ParsingError) Unwrap() error {
	return p.Err
}

// WithPos locates err at pos, unless it already carries a position.
func WithPos(err error, pos Pos) error {
	var located ParsingError
	if err == nil || errors.As(err, &located) {
		return err
	}
	return ParsingError{
		Err: err,
		Pos: pos,
	}
}
