// Package taxonomy keeps NCBI taxonomy dump data in memory.
//
// NameIndex is built from names.dmp and Tree from nodes.dmp. Both are
// filled once by a single linear scan and never modified afterwards, so
// they can be shared by any number of concurrent readers.
package taxonomy

import (
	"bufio"
	"context"
	"io"
	"strings"
)

const (
	// FieldSep separates fields of a dump record.
	FieldSep = "\t|\t"

	// recordEnd terminates every dump record.
	recordEnd = "\t|"

	// maxLineSize limits the length of a single dump record.
	maxLineSize = 1 << 20

	// ctxCheckEvery is how often (in lines) scanning checks for
	// cancellation.
	ctxCheckEvery = 10_000
)

// splitRecord breaks a dump line into trimmed fields.
func splitRecord(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimSuffix(line, recordEnd)
	res := strings.Split(line, FieldSep)
	for i := range res {
		res[i] = strings.TrimSpace(res[i])
	}
	return res
}

// scanRecords calls fn for every non-empty line of r with its 1-based
// line number and fields. Records with fewer than minFields fields
// stop the scan with ParseError, unreadable records with ScanError.
func scanRecords(
	ctx context.Context,
	r io.Reader,
	source string,
	minFields int,
	fn func(fields []string),
) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lineNum int
	for sc.Scan() {
		lineNum++
		if lineNum%ctxCheckEvery == 1 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitRecord(line)
		if len(fields) < minFields {
			return ParseError(source, lineNum, minFields, len(fields))
		}
		fn(fields)
	}
	if err := sc.Err(); err != nil {
		return ScanError(source, lineNum+1, err)
	}
	return nil
}
