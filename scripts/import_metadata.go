// +build ignore

package main

import (
	"bufio"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Line represents one record of the tab-separated import file:
//
//	path  kind  attribute  value  [units]
//
// kind is "leaf" or "container". Lines starting with '#' are skipped.
type Line struct {
	Path  string
	Kind  string
	Attr  string
	Value string
	Units string
}

func main() {
	dryRun := flag.Bool("dry-run", false, "Preview import without executing")
	dbPath := flag.String("db", "", "Catalog database path (default ~/.catq/catalog.db)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: go run import_metadata.go [-dry-run] [-db path] <file.tsv>")
		os.Exit(1)
	}

	if *dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home dir: %v\n", err)
			os.Exit(1)
		}
		*dbPath = filepath.Join(homeDir, ".catq", "catalog.db")
	}

	lines, err := readLines(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading import file: %v\n", err)
		os.Exit(1)
	}

	if len(lines) == 0 {
		fmt.Println("No records found to import")
		return
	}

	fmt.Printf("Found %d record(s) to import:\n\n", len(lines))
	for _, l := range lines {
		fmt.Printf("  %s (%s): %s = %s", l.Path, l.Kind, l.Attr, l.Value)
		if l.Units != "" {
			fmt.Printf(" [%s]", l.Units)
		}
		fmt.Println()
	}

	if *dryRun {
		fmt.Println("\n=== DRY RUN - No changes made ===")
		return
	}

	db, err := sql.Open("sqlite3", *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("\n=== Executing import ===")

	imported := 0
	for _, l := range lines {
		if err := importLine(db, l); err != nil {
			fmt.Fprintf(os.Stderr, "Error importing %s: %v\n", l.Path, err)
			continue
		}
		imported++
	}

	fmt.Printf("\n=== Import complete: %d/%d records imported ===\n", imported, len(lines))
}

func readLines(name string) ([]Line, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []Line
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < 4 {
			return nil, fmt.Errorf("line %d: expected at least 4 tab-separated fields, got %d", lineNo, len(fields))
		}

		l := Line{
			Path:  canonicalize(fields[0]),
			Kind:  fields[1],
			Attr:  fields[2],
			Value: fields[3],
		}
		if len(fields) > 4 {
			l.Units = fields[4]
		}
		if l.Kind != "leaf" && l.Kind != "container" {
			return nil, fmt.Errorf("line %d: kind must be 'leaf' or 'container', got %q", lineNo, l.Kind)
		}

		lines = append(lines, l)
	}
	return lines, scanner.Err()
}

func importLine(db *sql.DB, l Line) error {
	// Create missing ancestor containers root-first.
	var ancestors []string
	for p := path.Dir(l.Path); ; p = path.Dir(p) {
		ancestors = append([]string{p}, ancestors...)
		if p == "/" {
			break
		}
	}
	for _, p := range ancestors {
		if _, err := db.Exec(
			"INSERT OR IGNORE INTO entries (path, parent, name, kind) VALUES (?, ?, ?, 'container')",
			p, path.Dir(p), path.Base(p),
		); err != nil {
			return err
		}
	}

	if _, err := db.Exec(
		"INSERT OR IGNORE INTO entries (path, parent, name, kind) VALUES (?, ?, ?, ?)",
		l.Path, path.Dir(l.Path), path.Base(l.Path), l.Kind,
	); err != nil {
		return err
	}

	var entryID int64
	if err := db.QueryRow(
		"SELECT id FROM entries WHERE path = ? AND kind = ?", l.Path, l.Kind,
	).Scan(&entryID); err != nil {
		return err
	}

	_, err := db.Exec(
		"INSERT OR IGNORE INTO avus (entry_id, attr, value, units) VALUES (?, ?, ?, ?)",
		entryID, l.Attr, l.Value, l.Units,
	)
	return err
}

func canonicalize(target string) string {
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	return path.Clean(target)
}
