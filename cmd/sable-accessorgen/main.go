// Command sable-accessorgen derives the accessor-kind artifacts consumed by
// the rest of the Sable front end from the taxonomy in pkg/accessor.
//
// It emits three generated Go files (the AccessorKind enum, the keyword
// lookup table, and the category predicates), a human-readable YAML
// manifest, and a CBOR snapshot that sable-accessors can later diff against
// the live table to detect stale artifacts.
//
// Usage:
//
//	sable-accessorgen -output <dir> [-package <name>] [-manifest <path>]
//	                  [-snapshot <path>] [-artificial]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"
)

func main() {
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkgName := flag.String("package", "ast", "Package name for generated Go files")
	manifestPath := flag.String("manifest", "", "Output path for the YAML manifest")
	snapshotPath := flag.String("snapshot", "", "Output path for the CBOR snapshot")
	artificial := flag.Bool("artificial", false, "Include suppressed accessor kinds in the keyword table")
	flag.Parse()

	if *outputDir == "" && *manifestPath == "" && *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: sable-accessorgen -output <dir> [-package <name>] [-manifest <path>] [-snapshot <path>] [-artificial]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*outputDir, *pkgName, *manifestPath, *snapshotPath, *artificial); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(outputDir, pkgName, manifestPath, snapshotPath string, artificial bool) error {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}

		files := []struct {
			name     string
			generate func() (string, error)
		}{
			{"accessor_kinds_gen.go", func() (string, error) { return GenerateKinds(pkgName) }},
			{"accessor_keywords_gen.go", func() (string, error) { return GenerateKeywords(pkgName, artificial) }},
			{"accessor_predicates_gen.go", func() (string, error) { return GeneratePredicates(pkgName) }},
		}
		for _, f := range files {
			code, err := f.generate()
			if err != nil {
				return fmt.Errorf("generating %s: %w", f.name, err)
			}
			outPath := filepath.Join(outputDir, f.name)
			if err := writeFormatted(outPath, code); err != nil {
				return fmt.Errorf("writing %s: %w", f.name, err)
			}
			fmt.Printf("  generated %s\n", outPath)
		}
	}

	if manifestPath != "" {
		manifest, err := DeriveManifestYAML()
		if err != nil {
			return fmt.Errorf("deriving manifest: %w", err)
		}
		if err := writeOutput(manifestPath, []byte(manifest)); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		fmt.Printf("  generated %s\n", manifestPath)
	}

	if snapshotPath != "" {
		snapshot, err := DeriveSnapshot()
		if err != nil {
			return fmt.Errorf("deriving snapshot: %w", err)
		}
		if err := writeOutput(snapshotPath, snapshot); err != nil {
			return fmt.Errorf("writing snapshot: %w", err)
		}
		fmt.Printf("  generated %s\n", snapshotPath)
	}

	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
