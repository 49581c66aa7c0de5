package ioweb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
)

// ServerError is returned when the web server cannot start or stop.
func ServerError(addr string, err error) error {
	msg := "Web server at <em>%s</em> failed"
	vars := []any{addr}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ServerError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: server %s: %w", fn, addr, err),
	}
}
