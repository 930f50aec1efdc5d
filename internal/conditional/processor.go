// Package conditional filters template lines prefixed with a bracketed
// architecture condition, such as
//
//	[ARCH64] usr/lib/libvirt/some-helper
//	[linux-any] usr/sbin/some-daemon
//
// A condition ending in "-any" matches a target OS. Any other condition names
// a group from the variables table and matches when the target architecture
// is one of the group's members. Lines without a condition are kept.
package conditional

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/specialistvlad/debtemplates/internal/diag"
	"github.com/specialistvlad/debtemplates/internal/vars"
)

// Mode selects how conditions are treated.
type Mode int

const (
	// Filter emits a conditional line only when its condition matches.
	Filter Mode = iota
	// Strip drops every condition and emits all lines. Group names are not
	// validated in this mode.
	Strip
)

const anySuffix = "-any"

// Processor applies conditions for a single build context.
type Processor struct {
	Table *vars.Table
	Mode  Mode
	Arch  string
	OS    string
}

// Process reads the template from r and returns the filtered text: the kept
// lines, each trimmed, joined by newlines and followed by a final newline.
// name is only used in diagnostics.
func (p *Processor) Process(name string, r io.Reader) (string, error) {
	var output []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || line[0] != '[' {
			output = append(output, line)
			continue
		}

		cond, payload, found := strings.Cut(line[1:], "]")
		if !found {
			return "", diag.InvalidSyntax(name, lineno)
		}
		cond = strings.TrimSpace(cond)
		payload = strings.TrimSpace(payload)

		keep, err := p.matches(name, lineno, cond)
		if err != nil {
			return "", err
		}
		if keep {
			output = append(output, payload)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", name, err)
	}

	output = append(output, "")
	return strings.Join(output, "\n"), nil
}

func (p *Processor) matches(name string, lineno int, cond string) (bool, error) {
	if p.Mode == Strip {
		return true, nil
	}

	if strings.HasSuffix(cond, anySuffix) {
		return cond == p.OS+anySuffix, nil
	}

	if !p.Table.Has(cond) {
		return false, diag.UnknownGroup(name, lineno, cond)
	}
	return p.Table.Contains(cond, p.Arch), nil
}
