// Package array provides an ordered, type-homogeneous collection of secret
// integers that tracks which computation parties contributed to its elements.
//
// An Array accepts exactly the two secret-integer variants defined by the
// nada package and keeps a cached union of every element's provenance,
// maintained incrementally on insertion and recomputed on replacement and
// deletion. Downstream circuit-construction code reads the cached set via
// Parties to reason about trust boundaries without re-walking expression
// graphs.
//
//	alice := &nada.Party{Name: "alice"}
//	a, _ := array.New(
//	    nada.FromInput(nada.NewInput("x0", alice)),
//	    nada.FromInput(nada.NewInput("x1", alice)),
//	)
//	a.Parties().Sorted() // ["alice"]
//
// Sum reduces a sequence of secret integers left to right with the variants'
// own addition.
//
// Arrays are plain mutable values with no internal locking; callers sharing
// one across goroutines must synchronize externally.
package array
