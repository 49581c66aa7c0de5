package lineage

import (
	"strings"

	"github.com/gnames/gnlineage/pkg/errcode"
	"github.com/gnames/gnuuid"
)

// Reasons for skipping the search of the last common node.
const (
	SkipNotFound = "one of the queries could not be found"
	SkipFailed   = "one of the lineages could not be resolved"
	SkipSingle   = "cannot determine last node for a single query"
	SkipEmpty    = "there are no queries"
)

// Options control a batch of queries.
type Options struct {
	// Short removes hidden taxa from lineages.
	Short bool
	// WithCommon requests the last common node of all queries.
	WithCommon bool
}

// Report is the outcome of one query.
type Report struct {
	// Query as it was given, without surrounding whitespace.
	Query string
	// NameStringID is UUID v5 of the query string.
	NameStringID string
	Lineage      Lineage
	// Err is set when the query could not be resolved.
	Err error
}

// Found is true when the lineage was resolved.
func (r Report) Found() bool {
	return r.Err == nil
}

// NotFound is true when the query matched no name.
func (r Report) NotFound() bool {
	return errcode.Is(r.Err, errcode.NotFoundError)
}

// Common is the outcome of the last common node search.
type Common struct {
	// Requested is true if the search was asked for.
	Requested bool
	// Skipped explains why the search did not run.
	Skipped string
	// Taxon is the last common node, valid when Err is nil and Skipped
	// is empty.
	Taxon Taxon
	// Err is set when the search ran but found no common node.
	Err error
}

// Found is true when the last common node was determined.
func (c Common) Found() bool {
	return c.Requested && c.Skipped == "" && c.Err == nil
}

// Result is the outcome of a batch.
type Result struct {
	Options Options
	// Reports keep the order of queries.
	Reports []Report
	Common  Common
}

// Queries returns the query labels in order.
func (r Result) Queries() []string {
	res := make([]string, len(r.Reports))
	for i := range r.Reports {
		res[i] = r.Reports[i].Query
	}
	return res
}

// Batch resolves every query independently, so one failed query does
// not affect others. The last common node is searched only when all
// queries were resolved and there are at least two of them.
func Batch(f Finder, queries []string, opts Options) Result {
	res := Result{
		Options: opts,
		Reports: make([]Report, len(queries)),
	}

	for i, q := range queries {
		q = strings.TrimSpace(q)
		lin, err := f.Find(q, opts.Short)
		res.Reports[i] = Report{
			Query:        q,
			NameStringID: gnuuid.New(q).String(),
			Lineage:      lin,
			Err:          err,
		}
	}

	if opts.WithCommon {
		res.Common = common(res.Reports)
	}
	return res
}

func common(reports []Report) Common {
	res := Common{Requested: true}
	if len(reports) == 0 {
		res.Skipped = SkipEmpty
		return res
	}
	for _, v := range reports {
		if v.NotFound() {
			res.Skipped = SkipNotFound
			return res
		}
	}
	for _, v := range reports {
		if !v.Found() {
			res.Skipped = SkipFailed
			return res
		}
	}
	if len(reports) < 2 {
		res.Skipped = SkipSingle
		return res
	}

	lins := make([]Lineage, len(reports))
	labels := make([]string, len(reports))
	for i := range reports {
		lins[i] = reports[i].Lineage
		labels[i] = reports[i].Query
	}
	res.Taxon, res.Err = commonAncestor(lins, labels)
	return res
}

// SplitQueries breaks a comma-separated list of names, dropping empty
// items.
func SplitQueries(s string) []string {
	var res []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}
