package array

import (
	"github.com/nillionnetwork/nada-data-go/pkg/nada"
)

// Sum reduces values left to right with the secret integers' own addition
// and returns the result. The fold is strictly sequential: no reassociation,
// no reordering.
//
// An empty input fails with ErrIndexOutOfRange. Every element after the
// first is checked against the accepted variants; the first element is taken
// as-is, matching the reduction's seed semantics. Mixing variants fails with
// ErrValueType.
func Sum(values []nada.Value) (nada.Value, error) {
	if len(values) == 0 {
		return nil, boundsErr("Sum", 0, 0)
	}
	out := values[0]
	for _, e := range values[1:] {
		if err := checkValue(e); err != nil {
			return nil, opErr("Sum", err)
		}
		next, err := add(out, e)
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// Sum reduces the array's elements left to right. See the package-level Sum.
func (a *Array) Sum() (nada.Value, error) {
	return Sum(a.data)
}

// add dispatches addition on the accumulator's variant. Both operands must
// be the same variant; the graph layer defines no cross-variant addition.
func add(acc, e nada.Value) (nada.Value, error) {
	switch left := acc.(type) {
	case *nada.SecretInteger:
		right, ok := e.(*nada.SecretInteger)
		if !ok {
			return nil, opErr("Sum", ErrValueType)
		}
		return left.Add(right), nil
	case *nada.AuditedInteger:
		right, ok := e.(*nada.AuditedInteger)
		if !ok {
			return nil, opErr("Sum", ErrValueType)
		}
		return left.Add(right), nil
	default:
		return nil, opErr("Sum", ErrValueType)
	}
}
