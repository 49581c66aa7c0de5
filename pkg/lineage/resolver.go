package lineage

import (
	"github.com/gnames/gnlineage/pkg/taxonomy"
)

// Finder resolves a query to its lineage.
type Finder interface {
	// Find returns the lineage of a query. If short is true, hidden
	// taxa are removed.
	Find(query string, short bool) (Lineage, error)
}

// Resolver combines a name index and a taxonomy tree loaded from the
// same dump. It is read-only and safe for concurrent use.
type Resolver struct {
	names *taxonomy.NameIndex
	tree  *taxonomy.Tree
}

// NewResolver creates a Resolver. Neither argument is modified
// afterwards.
func NewResolver(names *taxonomy.NameIndex, tree *taxonomy.Tree) *Resolver {
	return &Resolver{names: names, tree: tree}
}

// Names returns the name index.
func (r *Resolver) Names() *taxonomy.NameIndex {
	return r.names
}

// Tree returns the taxonomy tree.
func (r *Resolver) Tree() *taxonomy.Tree {
	return r.tree
}

// Find implements Finder.
func (r *Resolver) Find(query string, short bool) (Lineage, error) {
	id, err := r.names.Resolve(query)
	if err != nil {
		return Lineage{}, err
	}
	return r.FindByID(id, short)
}

// FindByID returns the lineage of a taxon ID.
func (r *Resolver) FindByID(id string, short bool) (Lineage, error) {
	path, err := r.tree.PathToRoot(id)
	if err != nil {
		return Lineage{}, err
	}

	res := Lineage{Short: short, Taxa: make([]Taxon, 0, len(path))}
	for _, v := range path {
		node, err := r.tree.Node(v)
		if err != nil {
			return Lineage{}, err
		}
		if short && node.Hidden {
			continue
		}

		name, err := r.names.DisplayName(v)
		if err != nil {
			return Lineage{}, err
		}
		res.Taxa = append(res.Taxa, Taxon{
			TaxID: node.TaxID,
			Name:  name,
			Rank:  node.Rank,
		})
	}
	return res, nil
}
