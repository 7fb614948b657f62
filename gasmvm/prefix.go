package gasmvm

import (
	"fmt"
	"strconv"
)

type PrefixKind uint8

const (
	PrefixInt PrefixKind = iota
	PrefixText
	PrefixDerived
)

// Derivation names how a derived prefix computes its value from machine state.
type Derivation uint8

const (
	DerivePosition Derivation = iota
	DeriveCell
	DeriveRandom
	DeriveZero
	DeriveSigned
	DeriveNonZero
	DerivePrime
	DeriveParity
	DeriveOddity
)

var derivationNames = [...]string{
	DerivePosition: "pos",
	DeriveCell:     "cell",
	DeriveRandom:   "random",
	DeriveZero:     "zero",
	DeriveSigned:   "signed",
	DeriveNonZero:  "non_zero",
	DerivePrime:    "prime",
	DeriveParity:   "parity",
	DeriveOddity:   "oddity",
}

func (d Derivation) String() string {
	if int(d) < len(derivationNames) {
		return derivationNames[d]
	}
	return fmt.Sprintf("Derivation(%d)", uint8(d))
}

// Prefix is a pending modifier value.
// Derived prefixes carry the prefixes they consumed at compile time in Args,
// resolved left to right when the consuming instruction runs.
type Prefix struct {
	Kind   PrefixKind
	Int    int
	Text   string
	Derive Derivation
	Args   []Prefix
}

func Int(n int) Prefix {
	return Prefix{
		Kind: PrefixInt,
		Int:  n,
	}
}

func Text(s string) Prefix {
	return Prefix{
		Kind: PrefixText,
		Text: s,
	}
}

func Derived(d Derivation, args ...Prefix) Prefix {
	return Prefix{
		Kind:   PrefixDerived,
		Derive: d,
		Args:   args,
	}
}

func (p Prefix) IsLiteral() bool {
	return p.Kind != PrefixDerived
}

func (p Prefix) String() string {
	switch p.Kind {
	case PrefixInt:
		return strconv.Itoa(p.Int)
	case PrefixText:
		return strconv.Quote(p.Text)
	}
	return fmt.Sprintf("%s%v", p.Derive, p.Args)
}

// Eval resolves p to a literal prefix.
func (p Prefix) Eval(m *Machine) Prefix {
	if p.Kind != PrefixDerived {
		return p
	}
	return Int(p.derive(m))
}

// Value resolves p to an integer.
// Text is read as a big-endian number of its bytes, the inverse of printing.
func (p Prefix) Value(m *Machine) int {
	switch p.Kind {
	case PrefixInt:
		return p.Int
	case PrefixText:
		n := 0
		for i := 0; i < len(p.Text); i++ {
			n = n<<8 | int(p.Text[i])
		}
		return n
	}
	return p.derive(m)
}

func (p Prefix) derive(m *Machine) int {
	switch p.Derive {

	case DerivePosition:
		return m.Pos()

	case DeriveCell:
		return m.Cell()

	case DeriveRandom:
		switch len(p.Args) {
		case 0:
			return m.randomBelow(m.Options.RandomBound())
		case 1:
			return m.randomBelow(p.Args[0].Value(m))
		default:
			return m.randomBetween(p.Args[0].Value(m), p.Args[1].Value(m))
		}

	case DeriveZero:
		return boolInt(p.subject(m) == 0)

	case DeriveSigned:
		return boolInt(p.subject(m) < 0)

	case DeriveNonZero:
		return boolInt(p.subject(m) != 0)

	case DerivePrime:
		return boolInt(isPrime(p.subject(m)))

	case DeriveParity:
		return boolInt(divisible(p.subject(m), p.modulus(m)))

	case DeriveOddity:
		return boolInt(!divisible(p.subject(m), p.modulus(m)))

	}
	panic(fmt.Errorf("unknown derivation: %v", p.Derive))
}

func (p Prefix) subject(m *Machine) int {
	if len(p.Args) > 0 {
		return p.Args[0].Value(m)
	}
	if m.Options.PredicatesReadLastWrite {
		return m.LastWrite
	}
	return m.Cell()
}

func (p Prefix) modulus(m *Machine) int {
	if len(p.Args) > 1 {
		return p.Args[1].Value(m)
	}
	return 2
}

func divisible(n, mod int) bool {
	if mod == 0 {
		return n == 0
	}
	return n%mod == 0
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
