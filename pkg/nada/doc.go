// Package nada provides the program-description types consumed by the
// provenance-tracked array core: computation parties, the expression graph
// built by secret-integer operations, and the two secret-integer variants.
//
// # Secret values
//
// A secret integer is a symbolic handle, not a number: operations on it build
// an expression graph that a compiler or evaluator consumes later. Exactly two
// variants exist:
//
//   - SecretInteger: provenance is implicit in the expression graph rooted at
//     the value. Resolving which parties contributed requires walking the
//     graph (see the provenance package).
//   - AuditedInteger: provenance is materialized as an explicit, ordered list
//     of parties, maintained through every operation. Intended for audit and
//     test harnesses where traversal cost or graph access is unwanted.
//
// Both implement the sealed Value interface; no other variant is valid.
//
// # Expression graph
//
// Nodes form a closed set: Input, Literal, Unary, Binary, IfElse, and Cast.
// Graphs are DAGs by construction; sharing a node between two values is fine,
// cycles are not representable through the public constructors.
//
// # Example
//
//	alice := &nada.Party{Name: "alice"}
//	bob := &nada.Party{Name: "bob"}
//
//	a := nada.FromInput(nada.NewInput("salary_a", alice))
//	b := nada.FromInput(nada.NewInput("salary_b", bob))
//	total := a.Add(b) // Binary(add) node over both inputs
//
// No cryptographic computation happens here. Values are never evaluated,
// encrypted, or revealed by this package.
package nada
