package cmds

import (
	"slices"
	"testing"
)

func TestFuncPlaceholders(t *testing.T) {
	tests := []struct {
		command *Command
		names   []string
	}{
		{Func(func() {}), nil},
		{Func(func(string, int) {}), []string{"STRING", "N"}},
		{Func(func(*uint64) {}), []string{"[N]"}},
		{Func(func(bool, testMode) error { return nil }), []string{"BOOL", "VALUE"}},
		{Func(func(int) {}).Args("BITS"), []string{"BITS"}},
	}
	for i, test := range tests {
		if !slices.Equal(test.command.ArgNames, test.names) {
			t.Fatalf("%d: got %v", i, test.command.ArgNames)
		}
	}
}

func TestFuncRejects(t *testing.T) {
	for i, fn := range []any{
		42,
		func() int { return 0 },
		func() (error, error) { return nil, nil },
		func(float64) {},
		func(struct{}) {},
		func([]string) {},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%d: expected panic", i)
				}
			}()
			Func(fn)
		}()
	}
}
