package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sable-lang/sable-go/pkg/accessor"
)

// runConsole starts the interactive command loop.
func runConsole() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "accessors> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	printHelp(rl.Stdout())

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(rl.Stdout(), "Exiting...")
			return nil
		}

		if !execLine(rl.Stdout(), line) {
			return nil
		}
	}
}

// execLine runs one console command. It returns false when the console
// should exit.
func execLine(w io.Writer, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		printHelp(w)

	case "list", "l":
		cmdList(w)

	case "kw", "keyword":
		if len(args) != 1 {
			fmt.Fprintln(w, "usage: kw <keyword>")
			return true
		}
		cmdKeyword(w, args[0])

	case "kind", "k":
		if len(args) != 1 {
			fmt.Fprintln(w, "usage: kind <name>")
			return true
		}
		cmdKind(w, args[0])

	case "cats", "categories":
		cmdCategories(w)

	case "exit", "quit", "q":
		return false

	default:
		fmt.Fprintf(w, "unknown command %q (try help)\n", cmd)
	}
	return true
}

func printHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  list           Print the full taxonomy
  kw <keyword>   Look up a source-level keyword
  kind <name>    Show one kind by name
  cats           Show category membership
  help           Show this help
  exit           Quit
`)
}

func cmdList(w io.Writer) {
	for _, e := range accessor.Entries() {
		fmt.Fprintln(w, formatEntry(e))
	}
}

func cmdKeyword(w io.Writer, keyword string) {
	e, ok := accessor.LookupKeyword(keyword)
	if !ok {
		fmt.Fprintf(w, "no accessor kind spelled %q\n", keyword)
		return
	}
	fmt.Fprintln(w, formatEntry(e))
	if e.Suppressed {
		fmt.Fprintf(w, "  note: %s is artificial and rejected in source\n", e.Kind)
	}
}

func cmdKind(w io.Writer, name string) {
	for _, e := range accessor.Entries() {
		if strings.EqualFold(e.Kind.String(), name) {
			fmt.Fprintln(w, formatEntry(e))
			return
		}
	}
	fmt.Fprintf(w, "no accessor kind named %q\n", name)
}

func cmdCategories(w io.Writer) {
	byCategory := make(map[accessor.Category][]accessor.Kind)
	for _, e := range accessor.Entries() {
		byCategory[e.Category] = append(byCategory[e.Category], e.Kind)
	}
	for c := accessor.CategorySingleton; c <= accessor.CategoryAddressor; c++ {
		kinds := byCategory[c]
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}
		fmt.Fprintf(w, "%-10s %s\n", c, strings.Join(names, ", "))
	}
}

// formatEntry renders one row for display.
func formatEntry(e accessor.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %-10s", e.Kind, e.Category)
	if e.Keyword != "" {
		fmt.Fprintf(&b, " keyword=%s", e.Keyword)
	} else {
		b.WriteString(" (marker)")
	}
	if e.Category == accessor.CategoryAddressor && e.Addressor != accessor.AddressorNone {
		fmt.Fprintf(&b, " addressor=%s/%s", e.Addressor, e.Mutability)
	}
	if e.Suppressed {
		b.WriteString(" [suppressed]")
	}
	return b.String()
}
