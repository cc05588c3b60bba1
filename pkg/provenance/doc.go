// Package provenance resolves which computation parties' private inputs
// contributed to a secret value.
//
// For an AuditedInteger the answer is read straight off the value's attached
// party list. For a plain SecretInteger the resolver walks the value's
// expression graph: Input nodes contribute their owning party, Literal nodes
// contribute nothing, and operator nodes union the contributions of their
// operands. Graphs are assumed acyclic; the walk imposes no depth limit and
// no cycle detection.
//
// Node shapes outside the closed set defined by the nada package (including
// nil children) contribute nothing. That default is deliberate: an unknown
// shape means the graph layer grew a node kind this resolver has not been
// taught, and under-reporting is surfaced by the exhaustive type switch in
// gather rather than by a runtime failure.
package provenance
