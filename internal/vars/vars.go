package vars

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strings"

	"github.com/specialistvlad/debtemplates/internal/diag"
)

// Table maps group names to their tokens. It is immutable once built.
type Table struct {
	groups map[string][]string
	order  []string
}

// Load reads and parses the definitions file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open variables file: %w", err)
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads definitions from r. name is only used in diagnostics.
func Parse(name string, r io.Reader) (*Table, error) {
	t := &Table{groups: make(map[string][]string)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] == '#' {
			continue
		}

		parts := strings.Split(line, " ")
		if len(parts) < 2 || parts[1] != "=" {
			return nil, diag.InvalidSyntax(name, lineno)
		}

		t.set(parts[0], parts[2:])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return t, nil
}

// New builds a Table from an in-memory map. Names are ordered lexically.
func New(groups map[string][]string) *Table {
	t := &Table{groups: make(map[string][]string, len(groups))}
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		t.set(name, groups[name])
	}
	return t
}

func (t *Table) set(name string, tokens []string) {
	if _, exists := t.groups[name]; !exists {
		t.order = append(t.order, name)
	}
	t.groups[name] = slices.Clone(tokens)
}

// Lookup returns a copy of the tokens of the named group.
func (t *Table) Lookup(name string) ([]string, bool) {
	tokens, ok := t.groups[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(tokens), true
}

// Has reports whether name is a defined group.
func (t *Table) Has(name string) bool {
	_, ok := t.groups[name]
	return ok
}

// Contains reports whether token is a member of the named group.
func (t *Table) Contains(name, token string) bool {
	return slices.Contains(t.groups[name], token)
}

// Joined returns the tokens of the named group separated by single spaces.
func (t *Table) Joined(name string) (string, bool) {
	tokens, ok := t.groups[name]
	if !ok {
		return "", false
	}
	return strings.Join(tokens, " "), true
}

// Names returns the group names in definition order.
func (t *Table) Names() []string {
	return slices.Clone(t.order)
}

// Len returns the number of groups.
func (t *Table) Len() int {
	return len(t.groups)
}

// Placeholder returns the "${NAME}" form used to reference a group inside
// a control template.
func Placeholder(name string) string {
	return "${" + name + "}"
}
