package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
)

// CreateDirError is returned when a directory cannot be created.
func CreateDirError(dir string, err error) error {
	return fileError(errcode.CreateDirError,
		"Cannot create directory <em>%s</em>", "cannot create", dir, err)
}

// CopyFileError is returned when the default config cannot be written.
func CopyFileError(path string, err error) error {
	return fileError(errcode.CopyFileError,
		"Cannot copy default config to <em>%s</em>", "cannot copy", path, err)
}

// ReadFileError is returned when a dump, query or config file cannot be
// read.
func ReadFileError(path string, err error) error {
	return fileError(errcode.ReadFileError,
		"Cannot read <em>%s</em>", "cannot read", path, err)
}

// WriteFileError is returned when results cannot be written.
func WriteFileError(path string, err error) error {
	return fileError(errcode.WriteFileError,
		"Cannot write to <em>%s</em>", "cannot write", path, err)
}

// fileError records the caller of the exported constructor.
func fileError(
	code gn.ErrorCode,
	msg, action, path string,
	err error,
) error {
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %s %s: %w", fn.Name(), action, path, err),
	}
}
