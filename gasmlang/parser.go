package gasmlang

import (
	"errors"
	"io"

	"github.com/reusee/braingasm/gasmvm"
)

type Parser struct {
	tokenizer *Tokenizer
	compiler  *Compiler
	program   []gasmvm.Instruction
	opens     []Pos
}

func NewParser(tokenizer *Tokenizer, compiler *Compiler) *Parser {
	return &Parser{
		tokenizer: tokenizer,
		compiler:  compiler,
	}
}

func (p *Parser) ParseProgram() (*gasmvm.Program, error) {
	for {
		tok, err := p.tokenizer.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		insts, err := p.parseToken(tok)
		if err != nil {
			return nil, WithPos(err, tok.Pos)
		}
		p.push(insts...)
	}

	if len(p.opens) > 0 {
		return nil, WithPos(ErrUnmatchedOpen, p.opens[len(p.opens)-1])
	}

	return gasmvm.NewProgram(p.program), nil
}

// push appends instructions and returns the index of the last one.
func (p *Parser) push(insts ...gasmvm.Instruction) int {
	p.program = append(p.program, insts...)
	return len(p.program) - 1
}

func (p *Parser) parseToken(tok Token) ([]gasmvm.Instruction, error) {
	c := p.compiler

	switch tok.Kind {
	case TokenInt:
		c.Prefixes.Push(gasmvm.Int(tok.Int))
		return nil, nil
	case TokenString:
		c.Prefixes.Push(gasmvm.Text(tok.Text))
		return nil, nil
	case TokenUnknown:
		return nil, nil
	}

	one := func(inst gasmvm.Instruction) ([]gasmvm.Instruction, error) {
		return []gasmvm.Instruction{inst}, nil
	}

	switch tok.Op {
	case OpRight:
		return one(c.Right())
	case OpLeft:
		return one(c.Left())
	case OpInc:
		return one(c.Inc())
	case OpDec:
		return one(c.Dec())
	case OpMultiply:
		return one(c.Multiply())
	case OpDivide:
		return one(c.Divide())
	case OpPrint:
		return one(c.Print())
	case OpPrintInt:
		return one(c.PrintInt())
	case OpRead:
		return one(c.Read())
	case OpReadInt:
		return one(c.ReadInt())
	case OpCompare:
		return one(c.Compare())
	case OpQuit:
		return one(c.Quit())
	case OpTapeLimit:
		return one(c.TapeLimit())

	case OpCell:
		c.Cell()
	case OpPos:
		c.Pos()
	case OpRandom:
		c.Random()
	case OpZero:
		c.Predicate(gasmvm.DeriveZero)
	case OpSigned:
		c.Predicate(gasmvm.DeriveSigned)
	case OpNonZero:
		c.Predicate(gasmvm.DeriveNonZero)
	case OpPrime:
		c.Predicate(gasmvm.DerivePrime)
	case OpParity:
		c.Divisibility(gasmvm.DeriveParity)
	case OpOddity:
		c.Divisibility(gasmvm.DeriveOddity)

	case OpLoopOpen:
		p.opens = append(p.opens, tok.Pos)
		return c.LoopStart(len(p.program)), nil
	case OpLoopClose:
		inst, err := c.LoopEnd(len(p.program))
		if err != nil {
			return nil, err
		}
		p.opens = p.opens[:len(p.opens)-1]
		return one(inst)
	}

	return nil, nil
}
