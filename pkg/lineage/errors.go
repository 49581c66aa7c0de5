package lineage

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
)

// UsageError is returned when the last common node is requested for
// fewer than two lineages.
func UsageError(count int) error {
	msg := "Cannot determine last common node for %d lineage(s), " +
		"at least 2 are required"
	vars := []any{count}
	return &gn.Error{
		Code: errcode.UsageError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("common ancestor needs 2 or more lineages, got %d", count),
	}
}

// NoCommonAncestorError is returned when lineages share no taxon.
func NoCommonAncestorError(labels []string) error {
	msg := "Queries <em>%v</em> share no common node"
	vars := []any{labels}
	return &gn.Error{
		Code: errcode.NoCommonAncestorError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no common node for %v", labels),
	}
}
