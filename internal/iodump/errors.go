package iodump

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
)

// MissingRootError is returned when the nodes file has no root node.
func MissingRootError(rootID, path string) error {
	msg := "Root node <em>%s</em> is not found in <em>%s</em>"
	vars := []any{rootID, path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownNodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: root node '%s' is absent in %s",
			fn, rootID, path),
	}
}
