// Package expand substitutes group placeholders in control templates.
package expand

import (
	"strings"

	"github.com/specialistvlad/debtemplates/internal/vars"
)

// Control replaces every "${NAME}" in text whose NAME is a group in table
// with the group's tokens joined by single spaces. Placeholders naming an
// undefined group are left untouched.
//
// The text is scanned once from left to right, so replacement text is never
// itself searched for placeholders. Group names may contain '}'; when
// several placeholders start at the same position the longest one wins.
func Control(text string, table *vars.Table) string {
	placeholders := make([]string, 0, table.Len())
	names := table.Names()
	for _, name := range names {
		placeholders = append(placeholders, vars.Placeholder(name))
	}

	var b strings.Builder
	b.Grow(len(text))

	rest := text
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			b.WriteString(rest)
			break
		}

		match := -1
		for i, placeholder := range placeholders {
			if strings.HasPrefix(rest[start:], placeholder) &&
				(match < 0 || len(placeholder) > len(placeholders[match])) {
				match = i
			}
		}
		if match < 0 {
			// Not a group; resume scanning just past the '$'.
			b.WriteString(rest[:start+1])
			rest = rest[start+1:]
			continue
		}

		joined, _ := table.Joined(names[match])
		b.WriteString(rest[:start])
		b.WriteString(joined)
		rest = rest[start+len(placeholders[match]):]
	}

	return b.String()
}
