package gasmlang

import (
	"bufio"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode"
)

// Tokenizer reads tokens lazily from a single forward pass over its input.
type Tokenizer struct {
	Source *Source

	input *bufio.Reader

	currPos Pos
	prevPos Pos
	lastPos Pos
}

func NewTokenizer(input io.Reader) *Tokenizer {
	return &Tokenizer{
		input: bufio.NewReader(input),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.input.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.input.UnreadRune()
	t.currPos = t.prevPos
}

// Pos is the position of the most recently emitted token.
func (t *Tokenizer) Pos() Pos {
	return t.lastPos
}

// Next returns the next token, or io.EOF when the input is exhausted.
func (t *Tokenizer) Next() (Token, error) {
	t.skipWhitespace()
	start := t.currPos
	start.Source = t.Source

	r, err := t.readRune()
	if err != nil {
		return Token{}, err
	}
	t.lastPos = start

	switch {
	case r == '"':
		return t.parseString(start)
	case r >= '0' && r <= '9':
		t.unreadRune()
		return t.parseInt(start)
	}

	if op, ok := symbols[r]; ok {
		return Token{
			Kind: TokenOp,
			Op:   op,
			Text: string(r),
			Pos:  start,
		}, nil
	}

	return Token{
		Kind: TokenUnknown,
		Text: string(r),
		Pos:  start,
	}, nil
}

func (t *Tokenizer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := t.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) parseInt(start Pos) (Token, error) {
	var buf strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if r < '0' || r > '9' {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	n, err := strconv.Atoi(buf.String())
	if err != nil {
		return Token{}, WithPos(err, start)
	}
	return Token{
		Kind: TokenInt,
		Int:  n,
		Text: buf.String(),
		Pos:  start,
	}, nil
}

// parseString reads a raw string, no escapes.
func (t *Tokenizer) parseString(start Pos) (Token, error) {
	var buf strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			return Token{}, WithPos(ErrUnterminatedString, start)
		}
		if err != nil {
			return Token{}, err
		}
		if r == '"' {
			break
		}
		buf.WriteRune(r)
	}
	return Token{
		Kind: TokenString,
		Text: buf.String(),
		Pos:  start,
	}, nil
}
