package gasmconfigs

import (
	"testing"

	"github.com/reusee/braingasm/configs"
	"github.com/reusee/braingasm/gasmvm"
	"github.com/reusee/braingasm/modes"
	"github.com/reusee/dscope"
)

func newScope(t *testing.T, paths ...string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(paths, schema)),
	)
}

func TestDefaultOptions(t *testing.T) {
	newScope(t).Call(func(
		options gasmvm.Options,
	) {
		if options.EOF != gasmvm.EOFZero {
			t.Fatalf("got %v", options.EOF)
		}
		if !options.WrapCells {
			t.Fatal()
		}
		if options.CellLimit != 256 {
			t.Fatalf("got %v", options.CellLimit)
		}
		if options.PredicatesReadLastWrite {
			t.Fatal()
		}
		if options.QuitCode != 0 || options.Seed != 0 {
			t.Fatalf("got %+v", options)
		}
	})
}

func TestConfigOptions(t *testing.T) {
	newScope(t, "testdata/gasm.cue").Call(func(
		options gasmvm.Options,
	) {
		expected := gasmvm.Options{
			EOF:                     gasmvm.EOFNegative,
			WrapCells:               false,
			CellLimit:               1 << 16,
			PredicatesReadLastWrite: true,
			QuitCode:                3,
			Seed:                    42,
		}
		if options != expected {
			t.Fatalf("got %+v", options)
		}
	})
}

func TestFlagsOverConfig(t *testing.T) {
	defer func() {
		*eofFlag = nil
		wrapFlag = nil
		*cellSizeFlag = nil
		*quitCodeFlag = nil
	}()
	*eofFlag = ptr(gasmvm.EOFAsIs)
	wrapFlag = ptr(true)
	*cellSizeFlag = ptr(0)
	*quitCodeFlag = ptr(0)

	newScope(t, "testdata/gasm.cue").Call(func(
		options gasmvm.Options,
	) {
		if options.EOF != gasmvm.EOFAsIs {
			t.Fatalf("got %v", options.EOF)
		}
		if !options.WrapCells {
			t.Fatal()
		}
		// explicit zero means unbounded
		if options.CellLimit != 0 {
			t.Fatalf("got %v", options.CellLimit)
		}
		if options.QuitCode != 0 {
			t.Fatalf("got %v", options.QuitCode)
		}
		if options.Seed != 42 {
			t.Fatalf("got %v", options.Seed)
		}
	})
}

func TestBadEOFConfig(t *testing.T) {
	newScope(t, "testdata/bad_eof.cue").Call(func(
		loader configs.Loader,
	) {
		if loader.Err() == nil {
			t.Fatal("should error")
		}
	})
}
