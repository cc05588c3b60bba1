package nada

// Value is a secret integer handle. Exactly two variants implement it:
// SecretInteger (provenance implicit in the expression graph) and
// AuditedInteger (provenance carried as an explicit party list). The
// interface is sealed; boundaries that accept a Value from external code
// still type-switch over the two variants so that a nil interface or an
// embedded-forwarding type is rejected rather than stored.
type Value interface {
	isSecretValue()
}

// SecretInteger is the plain secret-integer variant. It is a symbolic handle
// over an expression graph; arithmetic builds new graph nodes and never
// evaluates anything.
type SecretInteger struct {
	root Node
}

func (*SecretInteger) isSecretValue() {}

// NewSecretInteger wraps an already-built expression graph in a secret
// integer. Most callers want FromInput instead.
func NewSecretInteger(root Node) *SecretInteger {
	return &SecretInteger{root: root}
}

// FromInput returns the secret integer produced directly by a private input.
func FromInput(in *Input) *SecretInteger {
	return &SecretInteger{root: in}
}

// Root returns the root node of the value's expression graph.
func (s *SecretInteger) Root() Node {
	return s.root
}

// Add returns the secret integer s + other.
func (s *SecretInteger) Add(other *SecretInteger) *SecretInteger {
	return &SecretInteger{root: &Binary{Op: OpAdd, Left: s.root, Right: other.root}}
}

// Sub returns the secret integer s - other.
func (s *SecretInteger) Sub(other *SecretInteger) *SecretInteger {
	return &SecretInteger{root: &Binary{Op: OpSub, Left: s.root, Right: other.root}}
}

// Mul returns the secret integer s * other.
func (s *SecretInteger) Mul(other *SecretInteger) *SecretInteger {
	return &SecretInteger{root: &Binary{Op: OpMul, Left: s.root, Right: other.root}}
}

// AuditedInteger is the audited secret-integer variant: it carries the list
// of contributing parties explicitly so that audit tooling can read
// provenance without graph access. The list is ordered (first contribution
// first) and deduplicated by party name.
type AuditedInteger struct {
	root    Node
	parties []*Party
}

func (*AuditedInteger) isSecretValue() {}

// NewAuditedInteger returns the audited integer produced by a private input.
// If the input has an owner, that party is the value's sole contributor.
func NewAuditedInteger(in *Input) *AuditedInteger {
	a := &AuditedInteger{root: in}
	if in != nil && in.Party != nil {
		a.parties = []*Party{in.Party}
	}
	return a
}

// Root returns the root node of the value's expression graph.
func (a *AuditedInteger) Root() Node {
	return a.root
}

// Parties returns the ordered list of contributing parties. The slice is a
// copy; mutating it does not affect the value.
func (a *AuditedInteger) Parties() []*Party {
	out := make([]*Party, len(a.parties))
	copy(out, a.parties)
	return out
}

// Add returns the audited integer a + other. The result's party list is the
// ordered union of both operands' lists.
func (a *AuditedInteger) Add(other *AuditedInteger) *AuditedInteger {
	return &AuditedInteger{
		root:    &Binary{Op: OpAdd, Left: a.root, Right: other.root},
		parties: unionParties(a.parties, other.parties),
	}
}

// Sub returns the audited integer a - other.
func (a *AuditedInteger) Sub(other *AuditedInteger) *AuditedInteger {
	return &AuditedInteger{
		root:    &Binary{Op: OpSub, Left: a.root, Right: other.root},
		parties: unionParties(a.parties, other.parties),
	}
}

// Mul returns the audited integer a * other.
func (a *AuditedInteger) Mul(other *AuditedInteger) *AuditedInteger {
	return &AuditedInteger{
		root:    &Binary{Op: OpMul, Left: a.root, Right: other.root},
		parties: unionParties(a.parties, other.parties),
	}
}

// unionParties merges two ordered party lists, keeping first occurrence by
// name.
func unionParties(a, b []*Party) []*Party {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]*Party, 0, len(a)+len(b))
	for _, list := range [2][]*Party{a, b} {
		for _, p := range list {
			if p == nil {
				continue
			}
			if _, ok := seen[p.Name]; ok {
				continue
			}
			seen[p.Name] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
