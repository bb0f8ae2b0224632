// Package macro expands typed abbreviations into longer text at word
// boundaries. Tables are tab-separated files of "key<TAB>expansion" lines.
package macro

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Table struct {
	entries map[string]string
}

func NewTable() *Table {
	return &Table{entries: make(map[string]string)}
}

func LoadTable(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open macro table %s: %w", path, err)
	}
	defer file.Close()

	table, err := ReadTable(file)
	if err != nil {
		return nil, fmt.Errorf("read macro table %s: %w", path, err)
	}
	return table, nil
}

// ReadTable parses macro lines from r. Blank lines and lines starting with
// '#' or ';' are skipped, as are lines without a tab.
func ReadTable(r io.Reader) (*Table, error) {
	table := NewTable()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		table.Add(parts[0], parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

func (t *Table) Add(key, expansion string) {
	key = strings.ToLower(strings.TrimSpace(key))
	expansion = strings.TrimSpace(expansion)
	if key == "" || expansion == "" {
		return
	}
	t.entries[key] = expansion
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup returns the expansion for key, matching the key's case: an
// all-caps key yields an all-caps expansion and a capitalized key a
// capitalized one.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil || key == "" {
		return "", false
	}
	value, ok := t.entries[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	switch {
	case utf8.RuneCountInString(key) > 1 && key == strings.ToUpper(key):
		return strings.ToUpper(value), true
	case startsUpper(key):
		return capitalize(value), true
	}
	return value, true
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
