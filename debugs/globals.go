package debugs

import (
	"github.com/reusee/braingasm/gasmvm"
	"go.starlark.net/starlark"
)

// machineGlobals exposes machine state to starlark.
// Values are copies, scripts can not mutate the machine.
func machineGlobals(m *gasmvm.Machine) starlark.StringDict {
	return starlark.StringDict{
		"tape":        toStarlarkValue(m.Tape),
		"dp":          toStarlarkValue(m.DP),
		"pos":         toStarlarkValue(m.Pos()),
		"offset":      toStarlarkValue(m.Offset),
		"ip":          toStarlarkValue(m.IP),
		"ctrl":        toStarlarkValue(m.Ctrl),
		"last_write":  toStarlarkValue(m.LastWrite),
		"tape_limit":  toStarlarkValue(m.TapeLimit),
		"options":     toStarlarkValue(m.Options),
		"program_len": toStarlarkValue(m.Program.Len()),

		// cell at a logical position
		"cell": toStarlarkValue(func(pos int) int {
			index := pos + m.Offset
			if index < 0 || index >= len(m.Tape) {
				return 0
			}
			return m.Tape[index]
		}),
	}
}
