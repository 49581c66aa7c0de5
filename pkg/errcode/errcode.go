package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Dump parsing errors
	ParseError

	// Taxonomy errors
	NotFoundError
	UnknownNodeError
	CycleError
	MissingNameError

	// Lineage errors
	UsageError
	NoCommonAncestorError

	// Output errors
	UnknownFormatError

	// Web errors
	ServerError
)

// Is reports whether err is a *gn.Error carrying the given code.
func Is(err error, code gn.ErrorCode) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == code
	}
	return false
}
