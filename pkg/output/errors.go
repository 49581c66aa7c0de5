package output

import (
	"fmt"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
)

// UnknownFormatError is returned for an unsupported output format.
func UnknownFormatError(format string) error {
	msg := "Unknown output format <em>%s</em>, supported formats: %s"
	vars := []any{format, strings.Join(FormatNames(), ", ")}
	return &gn.Error{
		Code: errcode.UnknownFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown format '%s'", format),
	}
}
