package array

import (
	"fmt"
	"iter"
	"strings"

	"github.com/nillionnetwork/nada-data-go/pkg/nada"
	"github.com/nillionnetwork/nada-data-go/pkg/provenance"
)

// Array is an ordered collection of secret integers with a cached provenance
// set. The cache always equals the union of every element's resolved
// provenance: additions union the new element's contribution in, replacement
// and deletion recompute the union from scratch (a removed element's sole
// contribution must disappear, which an incremental union cannot express).
//
// The zero value is not usable; use New, FromSlice, or FromSeq.
type Array struct {
	data    []nada.Value
	parties provenance.Set
}

// New returns an Array holding the given values, in order. Each value passes
// through the same homogeneity check as Append.
func New(values ...nada.Value) (*Array, error) {
	return FromSlice(values)
}

// FromSlice returns an Array holding the elements of values, in order.
func FromSlice(values []nada.Value) (*Array, error) {
	a := &Array{parties: make(provenance.Set)}
	for _, v := range values {
		if err := a.Append(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// FromSeq materializes a one-shot sequence into an Array. The sequence is
// consumed exactly once, in order, at construction time.
func FromSeq(seq iter.Seq[nada.Value]) (*Array, error) {
	a := &Array{parties: make(provenance.Set)}
	for v := range seq {
		if err := a.Append(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// checkValue is the homogeneity boundary: it accepts exactly the two
// secret-integer variants. A nil interface, or a foreign type that satisfies
// nada.Value by embedding, is rejected.
func checkValue(v nada.Value) error {
	switch v.(type) {
	case *nada.SecretInteger, *nada.AuditedInteger:
		return nil
	default:
		return ErrValueType
	}
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// At returns the element at index.
func (a *Array) At(index int) (nada.Value, error) {
	if index < 0 || index >= len(a.data) {
		return nil, boundsErr("At", index, len(a.data))
	}
	return a.data[index], nil
}

// Values returns an in-order iterator over the elements. Reading has no
// provenance side effects.
func (a *Array) Values() iter.Seq[nada.Value] {
	return func(yield func(nada.Value) bool) {
		for _, v := range a.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Append adds item at the end and unions its resolved provenance into the
// cached set. The array is unchanged on failure.
func (a *Array) Append(item nada.Value) error {
	if err := checkValue(item); err != nil {
		return opErr("Append", err)
	}
	a.data = append(a.data, item)
	a.parties.Union(provenance.Of(item))
	return nil
}

// Extend appends every element of items. The whole batch is validated and
// its provenance resolved before any mutation, so a failure anywhere in the
// batch leaves the array fully unmodified.
func (a *Array) Extend(items []nada.Value) error {
	staged := make(provenance.Set)
	for _, item := range items {
		if err := checkValue(item); err != nil {
			return opErr("Extend", err)
		}
		staged.Union(provenance.Of(item))
	}
	a.data = append(a.data, items...)
	a.parties.Union(staged)
	return nil
}

// ExtendSeq buffers a one-shot sequence and extends the array with it. The
// sequence is consumed exactly once, before validation, so a failing batch
// still leaves the array unmodified.
func (a *Array) ExtendSeq(seq iter.Seq[nada.Value]) error {
	var items []nada.Value
	for v := range seq {
		items = append(items, v)
	}
	return a.Extend(items)
}

// Insert places item at index, shifting subsequent elements right.
// index == Len() appends at the end.
func (a *Array) Insert(index int, item nada.Value) error {
	if index < 0 || index > len(a.data) {
		return boundsErr("Insert", index, len(a.data))
	}
	if err := checkValue(item); err != nil {
		return opErr("Insert", err)
	}
	a.data = append(a.data, nil)
	copy(a.data[index+1:], a.data[index:])
	a.data[index] = item
	a.parties.Union(provenance.Of(item))
	return nil
}

// Set replaces the element at index and recomputes the provenance set over
// all remaining elements.
func (a *Array) Set(index int, item nada.Value) error {
	if index < 0 || index >= len(a.data) {
		return boundsErr("Set", index, len(a.data))
	}
	if err := checkValue(item); err != nil {
		return opErr("Set", err)
	}
	a.data[index] = item
	a.recomputeParties()
	return nil
}

// Delete removes the element at index and recomputes the provenance set over
// all remaining elements.
func (a *Array) Delete(index int) error {
	if index < 0 || index >= len(a.data) {
		return boundsErr("Delete", index, len(a.data))
	}
	a.data = append(a.data[:index], a.data[index+1:]...)
	a.recomputeParties()
	return nil
}

// Concat returns a new Array holding the receiver's elements followed by
// other's. Neither operand is modified. Only another Array is accepted as
// the right operand; elements are already validated, so the result's
// provenance is the union of both cached sets.
func (a *Array) Concat(other *Array) *Array {
	out := &Array{
		data:    make([]nada.Value, 0, len(a.data)+len(other.data)),
		parties: a.parties.Clone(),
	}
	out.data = append(out.data, a.data...)
	out.data = append(out.data, other.data...)
	out.parties.Union(other.parties)
	return out
}

// Parties returns a snapshot of the cached provenance set: the union of
// every element's contributing party names.
func (a *Array) Parties() provenance.Set {
	return a.parties.Clone()
}

// recomputeParties rebuilds the cached set as the union over all elements.
func (a *Array) recomputeParties() {
	a.parties = make(provenance.Set)
	for _, v := range a.data {
		a.parties.Union(provenance.Of(v))
	}
}

// String renders a summary of the form <len=N> <parties=['a','b']> with
// party names sorted and single quoted. Element values never appear.
func (a *Array) String() string {
	names := a.parties.Sorted()
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return fmt.Sprintf("<len=%d> <parties=[%s]>", len(a.data), strings.Join(quoted, ","))
}
