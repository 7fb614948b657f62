package cmds

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage(w io.Writer) {
	printCommands(w, p.commands, 0)
}

func printCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases are listed with their command
	seen := make(map[*Command]bool)
	names := slices.SortedFunc(maps.Keys(commands), func(a, b string) int {
		return cmp.Compare(strings.TrimLeft(a, "-!"), strings.TrimLeft(b, "-!"))
	})
	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		command := commands[name]
		if command == nil || seen[command] {
			continue
		}
		seen[command] = true

		line := indent + strings.Join(append([]string{name}, command.Aliases...), ", ")
		for _, arg := range command.ArgNames {
			line += " " + arg
		}
		if command.Description != "" {
			line = fmt.Sprintf("%-32s %s", line, command.Description)
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			printCommands(w, command.Subs, depth+1)
		}
	}
}
