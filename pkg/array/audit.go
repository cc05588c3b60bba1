package array

import (
	"fmt"

	"github.com/nillionnetwork/nada-data-go/pkg/nada"
)

// AuditInputs builds an Array of audited secret integers for test and audit
// harnesses: one per element of arr, each wired to a fresh Input named
// prefix0, prefix1, ... and owned by party. Only the length of arr is used;
// the values themselves stay with the harness that binds them at evaluation
// time.
//
// This is a convenience for audit tooling, not part of the production data
// path.
func AuditInputs(arr []int64, party *nada.Party, prefix string) (*Array, error) {
	values := make([]nada.Value, len(arr))
	for i := range arr {
		in := nada.NewInput(fmt.Sprintf("%s%d", prefix, i), party)
		values[i] = nada.NewAuditedInteger(in)
	}
	return FromSlice(values)
}
