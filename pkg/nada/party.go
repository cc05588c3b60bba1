package nada

// Party identifies one participant in the multi-party computation. Parties
// are compared by Name everywhere provenance is concerned; two Party values
// with the same Name denote the same participant.
type Party struct {
	Name string
}

// String returns the party name.
func (p *Party) String() string {
	if p == nil {
		return ""
	}
	return p.Name
}
