package cmds

import (
	"fmt"
	"reflect"
)

// Command is a flag or word on the command line.
// Func receives the arguments following it; Subs become visible after it.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// ArgNames are usage placeholders, one per parameter of Func
	ArgNames []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Args replaces the placeholders derived from the parameter types.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = names
	return c
}

// Func wraps fn, which may return nothing or an error.
// Parameters must be types the executor can parse; anything else panics here instead of on first use.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	fnType := fnValue.Type()
	switch {
	case fnType.NumOut() > 1,
		fnType.NumOut() == 1 && fnType.Out(0) != errorType:
		panic(fmt.Errorf("must return nothing or error, got %v", fnType))
	}

	command := &Command{
		Func: fnValue,
	}
	for i := range fnType.NumIn() {
		t := fnType.In(i)
		if !parsable(t) {
			panic(fmt.Errorf("cannot parse argument %d of %v", i, fnType))
		}
		command.ArgNames = append(command.ArgNames, placeholder(t))
	}
	return command
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func parsable(t reflect.Type) bool {
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.Pointer:
		return parsable(t.Elem())
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

// placeholder names an argument in usage, optional ones in brackets.
func placeholder(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return "[" + placeholder(t.Elem()) + "]"
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return "VALUE"
	}
	switch t.Kind() {
	case reflect.String:
		return "STRING"
	case reflect.Bool:
		return "BOOL"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "N"
	}
	return "VALUE"
}
