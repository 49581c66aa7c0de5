// Package output renders results of lineage batches for people and
// programs.
package output

import "strings"

// Format determines how results are rendered.
type Format int

const (
	// FormatNone is an unknown format.
	FormatNone Format = iota
	// Text is a plain text line per query.
	Text
	// HTML produces fragments for the web form.
	HTML
	// CSV is comma-separated values with a header.
	CSV
	// TSV is tab-separated values with a header.
	TSV
	// CompactJSON is JSON on one line.
	CompactJSON
	// PrettyJSON is indented JSON.
	PrettyJSON
)

var formatNames = map[Format]string{
	Text:        "text",
	HTML:        "html",
	CSV:         "csv",
	TSV:         "tsv",
	CompactJSON: "compact",
	PrettyJSON:  "pretty",
}

// FormatNames returns names of supported formats.
func FormatNames() []string {
	return []string{"text", "html", "csv", "tsv", "compact", "pretty"}
}

// NewFormat converts a name into a Format. Names are case-insensitive,
// "json" is an alias of "compact".
func NewFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "json" {
		return CompactJSON, nil
	}
	for k, v := range formatNames {
		if v == s {
			return k, nil
		}
	}
	return FormatNone, UnknownFormatError(s)
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return "none"
}

// IsJSON is true for both JSON formats.
func (f Format) IsJSON() bool {
	return f == CompactJSON || f == PrettyJSON
}
