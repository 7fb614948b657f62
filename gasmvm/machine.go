package gasmvm

import (
	"math/rand/v2"
	"os"

	"github.com/reusee/braingasm/logs"
)

const initialTapeLength = 10

type State struct {
	Tape []int `cbor:"1,keyasint"`
	// DP is the storage index of the current cell
	DP int `cbor:"2,keyasint"`
	// Offset counts cells prepended by moving left of index 0
	Offset    int   `cbor:"3,keyasint"`
	IP        int   `cbor:"4,keyasint"`
	Ctrl      []int `cbor:"5,keyasint"`
	LastWrite int   `cbor:"6,keyasint"`
	// TapeLimit wraps addresses modulo its absolute value, 0 for none
	TapeLimit int `cbor:"7,keyasint"`
}

type Machine struct {
	State
	Program *Program
	Options Options
	Input   Input
	Output  Output
	Logger  logs.Logger

	rand *rand.Rand
}

func NewMachine(program *Program, options Options) *Machine {
	seed := options.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Machine{
		State: State{
			Tape: make([]int, initialTapeLength),
		},
		Program: program,
		Options: options,
		Input:   NewInputBuffer(os.Stdin),
		Output:  NewWriterOutput(os.Stdout),
		rand:    rand.New(rand.NewPCG(seed, seed>>32|seed<<32)),
	}
}

// Pos is the logical position, stable across leftward tape growth.
func (m *Machine) Pos() int {
	return m.DP - m.Offset
}

func (m *Machine) Cell() int {
	if m.DP < 0 || m.DP >= len(m.Tape) {
		return 0
	}
	return m.Tape[m.DP]
}

func (m *Machine) SetCell(value int) {
	m.setCellAt(m.DP, value)
}

func (m *Machine) setCellAt(index int, value int) {
	m.ensure(index)
	value = m.Options.wrap(value)
	m.Tape[index] = value
	m.LastWrite = value
}

func (m *Machine) ensure(index int) {
	if index < len(m.Tape) {
		return
	}
	size := index*3/2 + 1
	m.Tape = append(m.Tape, make([]int, size-len(m.Tape))...)
}

// address maps a storage index through the tape limit.
func (m *Machine) address(index int) int {
	if m.TapeLimit == 0 {
		return index
	}
	limit := m.TapeLimit
	if limit < 0 {
		limit = -limit
	}
	return floorMod(index, limit)
}

func (m *Machine) Move(delta int) {
	target := m.address(m.DP + delta)
	if target < 0 {
		grow := -target
		tape := make([]int, grow, grow+len(m.Tape))
		m.Tape = append(tape, m.Tape...)
		m.Offset += grow
		target = 0
	}
	m.ensure(target)
	m.DP = target
}

func (m *Machine) randomBelow(bound int) int {
	if bound <= 0 {
		return 0
	}
	return m.rand.IntN(bound)
}

func (m *Machine) randomBetween(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + m.rand.IntN(hi-lo+1)
}

func (m *Machine) debug(msg string, args ...any) {
	if m.Logger == nil {
		return
	}
	m.Logger.Debug(msg, args...)
}
