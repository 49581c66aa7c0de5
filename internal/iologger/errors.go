package iologger

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
)

// CreateLogFileError is returned when the log file cannot be opened.
func CreateLogFileError(path string, err error) error {
	pc, _, _, _ := runtime.Caller(1)
	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  "Cannot open log file <em>%s</em>",
		Vars: []any{path},
		Err: fmt.Errorf("from %s: cannot open log %s: %w",
			runtime.FuncForPC(pc).Name(), path, err),
	}
}
