package gasmvm

import "fmt"

type EOFMode uint8

const (
	// EOFZero stores 0 when input is exhausted
	EOFZero EOFMode = iota
	// EOFNegative stores -1
	EOFNegative
	// EOFAsIs leaves the cell unchanged
	EOFAsIs
)

func (e EOFMode) String() string {
	switch e {
	case EOFZero:
		return "zero"
	case EOFNegative:
		return "negative"
	case EOFAsIs:
		return "as-is"
	}
	return fmt.Sprintf("EOFMode(%d)", uint8(e))
}

func ParseEOFMode(str string) (EOFMode, error) {
	switch str {
	case "zero", "0":
		return EOFZero, nil
	case "negative", "-1":
		return EOFNegative, nil
	case "as-is", "unset", "":
		return EOFAsIs, nil
	}
	return 0, fmt.Errorf("unknown eof mode: %q", str)
}

func (e *EOFMode) UnmarshalText(text []byte) error {
	mode, err := ParseEOFMode(string(text))
	if err != nil {
		return err
	}
	*e = mode
	return nil
}

const DefaultCellLimit = 256

// Options is the runtime configuration consulted by the compiler and the machine.
// The zero value means: store 0 on EOF, unbounded cells.
type Options struct {
	EOF       EOFMode
	WrapCells bool
	// CellLimit is the cell modulus, 2^cell-size
	CellLimit int
	// PredicatesReadLastWrite makes z, s, n, q, p and o test the last written
	// value instead of the current cell when given no prefix.
	PredicatesReadLastWrite bool
	// QuitCode is the exit code requested by Q
	QuitCode int
	// Seed seeds the random prefix; 0 picks a random seed
	Seed uint64
}

func DefaultOptions() Options {
	return Options{
		EOF:       EOFZero,
		WrapCells: true,
		CellLimit: DefaultCellLimit,
	}
}

// RandomBound is the exclusive upper bound of r without prefixes.
func (o Options) RandomBound() int {
	if o.CellLimit > 0 {
		return o.CellLimit
	}
	return DefaultCellLimit
}

func (o Options) wrap(value int) int {
	if !o.WrapCells || o.CellLimit <= 0 {
		return value
	}
	return floorMod(value, o.CellLimit)
}

func floorMod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
