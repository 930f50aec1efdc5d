// Package vars loads the variable definitions file that names groups of
// architectures. Each non-blank, non-comment line has the shape
//
//	NAME = tok1 tok2 ...
//
// and defines NAME as the ordered list of tokens that follow the equals sign.
// A bare "NAME =" defines an empty group.
//
// Groups are stored under their raw name. Templates refer to them as
// "${NAME}" (see Placeholder) in control files and as "[NAME]" in
// conditional lines; both lookups go through the same Table.
package vars
