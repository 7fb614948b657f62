package gasmvm

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("gasmvm: create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Snapshot writes the machine state. Programs are not part of it.
func (m *Machine) Snapshot(w io.Writer) error {
	if err := cborEncMode.NewEncoder(w).Encode(m.State); err != nil {
		return fmt.Errorf("gasmvm: snapshot: %w", err)
	}
	return nil
}

// Restore replaces the machine state with a snapshot.
// The instruction pointer restarts at 0.
func (m *Machine) Restore(r io.Reader) error {
	var state State
	if err := cbor.NewDecoder(r).Decode(&state); err != nil {
		return fmt.Errorf("gasmvm: restore: %w", err)
	}
	if len(state.Tape) == 0 {
		state.Tape = make([]int, initialTapeLength)
	}
	if state.DP < 0 {
		return fmt.Errorf("gasmvm: restore: negative data pointer %d", state.DP)
	}
	state.IP = 0
	m.State = state
	m.ensure(m.DP)
	return nil
}
