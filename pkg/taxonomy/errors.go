package taxonomy

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
)

// ParseError is returned when a dump record has fewer fields than
// required.
func ParseError(source string, line, want, got int) error {
	msg := "Malformed record in <em>%s</em> at line %d: " +
		"expected at least %d fields, got %d"
	vars := []any{source, line, want, got}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s:%d: want %d fields, got %d",
			fn.Name(), source, line, want, got),
	}
}

// ScanError is returned when a dump record cannot be read, for example
// when it exceeds the maximum record length.
func ScanError(source string, line int, err error) error {
	msg := "Cannot read record in <em>%s</em> at line %d"
	vars := []any{source, line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s:%d: %w", fn.Name(), source, line, err),
	}
}

// NotFoundError is returned when a query matches no name record.
func NotFoundError(query string) error {
	msg := "The query <em>%s</em> could not be found"
	vars := []any{query}
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("name not found: %q", query),
	}
}

// UnknownNodeError is returned when a taxon ID is absent from the tree.
// The child is the node that referenced the missing ID, empty when the
// missing ID was requested directly.
func UnknownNodeError(id, child string) error {
	msg := "Taxon ID <em>%s</em> does not exist in the taxonomy tree"
	vars := []any{id}
	err := fmt.Errorf("unknown node %q", id)
	if child != "" {
		msg = "Taxon ID <em>%s</em> is referenced as parent of " +
			"<em>%s</em> but does not exist in the taxonomy tree"
		vars = append(vars, child)
		err = fmt.Errorf("dangling parent %q of node %q", id, child)
	}
	return &gn.Error{
		Code: errcode.UnknownNodeError,
		Msg:  msg,
		Vars: vars,
		Err:  err,
	}
}

// CycleError is returned when a walk to the root does not reach the
// root node within the allowed number of steps.
func CycleError(id string, steps int) error {
	msg := "Taxon ID <em>%s</em> does not reach the root in %d steps, " +
		"taxonomy tree is corrupted"
	vars := []any{id, steps}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CycleError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cycle detected from node %q after %d steps",
			fn.Name(), id, steps),
	}
}

// MissingNameError is returned when a taxon ID has no scientific name.
func MissingNameError(id string) error {
	msg := "Taxon ID <em>%s</em> has no scientific name"
	vars := []any{id}
	return &gn.Error{
		Code: errcode.MissingNameError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no scientific name for node %q", id),
	}
}
