package lineage

import (
	"maps"
	"slices"
)

// CommonAncestor finds the last common node of lineages keyed by query
// labels. See CommonAncestorOf for the algorithm.
func CommonAncestor(lineages map[string]Lineage) (Taxon, error) {
	labels := slices.Sorted(maps.Keys(lineages))
	lins := make([]Lineage, len(labels))
	for i, v := range labels {
		lins[i] = lineages[v]
	}
	return commonAncestor(lins, labels)
}

// CommonAncestorOf finds the deepest taxon present in every lineage.
//
// Every lineage is turned into a set of taxon IDs and the sets are
// intersected. The intersection has no order, so the first lineage is
// scanned from the top down and the last taxon that belongs to the
// intersection is the answer. Lineages are root-to-leaf paths of one
// tree, so the common taxa form a shared prefix and the last of them is
// the lowest common ancestor.
//
// Fewer than two lineages give UsageError, an empty intersection gives
// NoCommonAncestorError.
func CommonAncestorOf(lineages ...Lineage) (Taxon, error) {
	return commonAncestor(lineages, nil)
}

func commonAncestor(lineages []Lineage, labels []string) (Taxon, error) {
	if len(lineages) < 2 {
		return Taxon{}, UsageError(len(lineages))
	}

	common := idSet(lineages[0])
	for _, lin := range lineages[1:] {
		ids := idSet(lin)
		for id := range common {
			if _, ok := ids[id]; !ok {
				delete(common, id)
			}
		}
	}

	var res Taxon
	var found bool
	for _, v := range lineages[0].Taxa {
		if _, ok := common[v.TaxID]; ok {
			res, found = v, true
		}
	}

	if !found {
		return Taxon{}, NoCommonAncestorError(labels)
	}
	return res, nil
}

func idSet(l Lineage) map[string]struct{} {
	res := make(map[string]struct{}, len(l.Taxa))
	for _, v := range l.Taxa {
		res[v.TaxID] = struct{}{}
	}
	return res
}
