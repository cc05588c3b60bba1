package provenance

import (
	"sort"

	"github.com/nillionnetwork/nada-data-go/pkg/nada"
)

// Set is a set of party names.
type Set map[string]struct{}

// NewSet returns a Set containing the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Union merges every name in other into s.
func (s Set) Union(other Set) {
	for name := range other {
		s[name] = struct{}{}
	}
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s Set) Len() int {
	return len(s)
}

// Equal reports whether s and other contain the same names.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the names in lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Of returns the set of party names whose inputs the value depends on.
// Audited values answer from their attached party list; plain values require
// a graph walk. Anything else resolves to the empty set.
func Of(v nada.Value) Set {
	out := make(Set)
	switch val := v.(type) {
	case *nada.AuditedInteger:
		for _, p := range val.Parties() {
			if p != nil {
				out.Add(p.Name)
			}
		}
	case *nada.SecretInteger:
		gather(val.Root(), out)
	}
	return out
}

// gather walks the expression graph rooted at n, adding every owning party's
// name to into. The type switch covers the closed node set; the default case
// treats unknown shapes as opaque leaves.
func gather(n nada.Node, into Set) {
	switch node := n.(type) {
	case *nada.Input:
		if node.Party != nil {
			into.Add(node.Party.Name)
		}
	case *nada.Literal:
		// public constant, no contributing party
	case *nada.Unary:
		gather(node.Inner, into)
	case *nada.Binary:
		gather(node.Left, into)
		gather(node.Right, into)
	case *nada.IfElse:
		gather(node.Cond, into)
		gather(node.Then, into)
		gather(node.Else, into)
	case *nada.Cast:
		gather(node.Inner, into)
	default:
		// nil child or a node kind this resolver does not know; contributes
		// nothing
	}
}
