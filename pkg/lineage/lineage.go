// Package lineage turns names into ordered taxonomic lineages and finds
// the last common node of several lineages.
package lineage

import (
	"strings"
)

const (
	// Separator divides names of a rendered lineage.
	Separator = ", "
	// Terminator ends a rendered lineage.
	Terminator = "."
)

// Taxon is one element of a lineage.
type Taxon struct {
	TaxID string `json:"taxId"`
	Name  string `json:"name"`
	Rank  string `json:"rank"`
}

// Lineage is an ordered list of taxa from the top of the tree to the
// queried taxon.
type Lineage struct {
	Taxa []Taxon `json:"taxa"`
	// Short is true if hidden taxa were removed.
	Short bool `json:"short"`
}

// Len returns the number of taxa.
func (l Lineage) Len() int {
	return len(l.Taxa)
}

// IsEmpty is true when no taxa are left, for example when every taxon
// of a short lineage was hidden.
func (l Lineage) IsEmpty() bool {
	return len(l.Taxa) == 0
}

// Names returns the names of taxa in lineage order.
func (l Lineage) Names() []string {
	res := make([]string, len(l.Taxa))
	for i := range l.Taxa {
		res[i] = l.Taxa[i].Name
	}
	return res
}

// Ranks returns the ranks of taxa in lineage order.
func (l Lineage) Ranks() []string {
	res := make([]string, len(l.Taxa))
	for i := range l.Taxa {
		res[i] = l.Taxa[i].Rank
	}
	return res
}

// IDs returns the taxon IDs in lineage order.
func (l Lineage) IDs() []string {
	res := make([]string, len(l.Taxa))
	for i := range l.Taxa {
		res[i] = l.Taxa[i].TaxID
	}
	return res
}

// Deepest returns the last (most specific) taxon.
func (l Lineage) Deepest() (Taxon, bool) {
	if len(l.Taxa) == 0 {
		return Taxon{}, false
	}
	return l.Taxa[len(l.Taxa)-1], true
}

// String renders the lineage as "A, B, C.". Empty lineage gives an
// empty string.
func (l Lineage) String() string {
	if len(l.Taxa) == 0 {
		return ""
	}
	return strings.Join(l.Names(), Separator) + Terminator
}

// ParseLineage splits a rendered lineage back into names, removing the
// terminating period of the last name only. Names that contain the
// separator cannot be recovered, use Lineage values when exact names
// matter.
func ParseLineage(s string) []string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, Terminator)
	if s == "" {
		return nil
	}
	return strings.Split(s, Separator)
}
