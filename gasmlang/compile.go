package gasmlang

import (
	"io"
	"strings"

	"github.com/reusee/braingasm/gasmvm"
)

func Compile(name string, r io.Reader, options gasmvm.Options) (*gasmvm.Program, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return CompileString(name, string(content), options)
}

func CompileString(name string, code string, options gasmvm.Options) (*gasmvm.Program, error) {
	tokenizer := NewTokenizer(strings.NewReader(code))
	tokenizer.Source = NewSource(name, code)
	return NewParser(tokenizer, NewCompiler(options)).ParseProgram()
}

// NewMachine compiles code and returns a fresh machine ready to run it.
func NewMachine(name string, r io.Reader, options gasmvm.Options) (*gasmvm.Machine, error) {
	program, err := Compile(name, r, options)
	if err != nil {
		return nil, err
	}
	return gasmvm.NewMachine(program, options), nil
}
