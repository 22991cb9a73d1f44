// Command sable-accessors inspects the accessor-kind taxonomy.
//
// Usage:
//
//	sable-accessors                      Interactive console
//	sable-accessors verify <file.cbor>   Diff a snapshot against the table
//
// Commands in the interactive console:
//
//	list           Print the full taxonomy
//	kw <keyword>   Look up a source-level keyword
//	kind <name>    Show one kind by name
//	cats           Show category membership
//	help           Show help
//	exit           Quit
//
// The verify subcommand reads a CBOR snapshot written by
// sable-accessorgen and reports drift against the compiled-in table,
// exiting non-zero when generated artifacts are stale.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sable-lang/sable-go/pkg/accessor"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "verify":
			if len(os.Args) != 3 {
				fmt.Fprintln(os.Stderr, "Usage: sable-accessors verify <file.cbor>")
				os.Exit(1)
			}
			if err := runVerify(os.Stdout, os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		case "help", "-h", "-help", "--help":
			fmt.Print(usage)
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
			os.Exit(1)
		}
	}

	if err := runConsole(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

const usage = `sable-accessors - Sable accessor taxonomy inspector

Usage:
  sable-accessors                      Interactive console
  sable-accessors verify <file.cbor>   Diff a snapshot against the table
`

// runVerify diffs a stored snapshot against the compiled-in taxonomy.
func runVerify(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	stored, err := accessor.DecodeManifest(data)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}

	diffs := accessor.BuildManifest().Diff(stored)
	if len(diffs) == 0 {
		fmt.Fprintf(w, "%s matches the taxonomy (revision %d, %d rows)\n",
			path, stored.Revision, len(stored.Accessors))
		return nil
	}

	for _, d := range diffs {
		fmt.Fprintf(w, "  %s\n", d)
	}
	return fmt.Errorf("%s drifts from the taxonomy in %d place(s); regenerate with sable-accessorgen", path, len(diffs))
}
