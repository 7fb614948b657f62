package gasmconfigs

import (
	"github.com/reusee/braingasm/cmds"
	"github.com/reusee/braingasm/configs"
	"github.com/reusee/braingasm/gasmvm"
	"github.com/reusee/braingasm/logs"
	"github.com/reusee/braingasm/vars"
)

// Flags are pointers so that an explicit zero still overrides the config files.
var (
	eofFlag       = cmds.Var[*gasmvm.EOFMode]("-eof", "end of input behavior: zero, negative or as-is")
	wrapFlag      *bool
	cellSizeFlag  = cmds.Var[*int]("-cell-size", "cell width in bits, 0 for unbounded cells")
	lastWriteFlag *bool
	quitCodeFlag  = cmds.Var[*int]("-quit-code", "exit code of Q")
	seedFlag      = cmds.Var[*uint64]("-seed", "random seed, 0 for a random one")
)

func init() {
	for name, mode := range map[string]gasmvm.EOFMode{
		"-zero":     gasmvm.EOFZero,
		"-negative": gasmvm.EOFNegative,
		"-as-is":    gasmvm.EOFAsIs,
	} {
		cmds.Define(name, cmds.Func(func() {
			*eofFlag = &mode
		}).Desc("on end of input, "+describeEOF(mode)))
	}

	cmds.Define("-wrap", cmds.Func(func() {
		wrapFlag = ptr(true)
	}).Desc("wrap cells around the cell size"))
	cmds.Define("!-wrap", cmds.Func(func() {
		wrapFlag = ptr(false)
	}).Desc("unbounded cells"))

	cmds.Define("-last-write", cmds.Func(func() {
		lastWriteFlag = ptr(true)
	}).Desc("predicates without a prefix test the last written value"))
	cmds.Define("!-last-write", cmds.Func(func() {
		lastWriteFlag = ptr(false)
	}).Desc("predicates without a prefix test the current cell"))
}

func describeEOF(mode gasmvm.EOFMode) string {
	switch mode {
	case gasmvm.EOFNegative:
		return "store -1"
	case gasmvm.EOFAsIs:
		return "leave the cell unchanged"
	}
	return "store 0"
}

func ptr[T any](v T) *T {
	return &v
}

const DefaultCellSize = 8

type WrapCells bool

type CellSize int

type PredicatesReadLastWrite bool

type QuitCode int

type Seed uint64

func (Module) EOFMode(
	loader configs.Loader,
	logger logs.Logger,
) gasmvm.EOFMode {
	if mode := *eofFlag; mode != nil {
		return *mode
	}
	if str := configs.First[*string](loader, "eof"); str != nil {
		mode, err := gasmvm.ParseEOFMode(*str)
		if err == nil {
			return mode
		}
		logger.Warn("bad eof config", "value", *str, "error", err)
	}
	return gasmvm.EOFZero
}

func (Module) WrapCells(
	loader configs.Loader,
) WrapCells {
	return WrapCells(vars.FirstSet(
		wrapFlag,
		configs.First[*bool](loader, "wrap"),
		ptr(true),
	))
}

func (Module) CellSize(
	loader configs.Loader,
	logger logs.Logger,
) CellSize {
	bits := vars.FirstSet(
		*cellSizeFlag,
		configs.First[*int](loader, "cell_size"),
		ptr(DefaultCellSize),
	)
	if bits < 0 || bits > 62 {
		logger.Warn("cell size out of range, using default", "bits", bits)
		bits = DefaultCellSize
	}
	return CellSize(bits)
}

func (Module) PredicatesReadLastWrite(
	loader configs.Loader,
) PredicatesReadLastWrite {
	return PredicatesReadLastWrite(vars.FirstSet(
		lastWriteFlag,
		configs.First[*bool](loader, "last_write"),
	))
}

func (Module) QuitCode(
	loader configs.Loader,
) QuitCode {
	return QuitCode(vars.FirstSet(
		*quitCodeFlag,
		configs.First[*int](loader, "quit_code"),
	))
}

func (Module) Seed(
	loader configs.Loader,
) Seed {
	return Seed(vars.FirstSet(
		*seedFlag,
		configs.First[*uint64](loader, "seed"),
	))
}

func (Module) Options(
	eof gasmvm.EOFMode,
	wrap WrapCells,
	cellSize CellSize,
	lastWrite PredicatesReadLastWrite,
	quitCode QuitCode,
	seed Seed,
	logger logs.Logger,
) gasmvm.Options {
	options := gasmvm.Options{
		EOF:                     eof,
		WrapCells:               bool(wrap),
		PredicatesReadLastWrite: bool(lastWrite),
		QuitCode:                int(quitCode),
		Seed:                    uint64(seed),
	}
	if cellSize > 0 {
		options.CellLimit = 1 << cellSize
	}
	logger.Debug("options",
		"eof", options.EOF,
		"wrap", options.WrapCells,
		"cell_limit", options.CellLimit,
		"last_write", options.PredicatesReadLastWrite,
		"quit_code", options.QuitCode,
	)
	return options
}
