package output

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/lineage"
)

// NotFoundMsg is shown instead of a lineage when a query matched no
// name.
const NotFoundMsg = "The query %s could not be found. Please check " +
	"your spelling or try with a different query. When using an " +
	"informal name, it can help to use the scientific name instead."

// Output is a serializable view of lineage.Result.
type Output struct {
	// Short is true when hidden taxa were removed.
	Short bool `json:"short"`
	// Queries keep the input order.
	Queries []Query `json:"queries"`
	// Common is present only if the last common node was requested.
	Common *Common `json:"common,omitempty"`
}

// Query is the outcome of one query.
type Query struct {
	Query        string          `json:"query"`
	NameStringID string          `json:"nameStringId"`
	Found        bool            `json:"found"`
	TaxID        string          `json:"taxId,omitempty"`
	Rank         string          `json:"rank,omitempty"`
	Lineage      string          `json:"lineage"`
	Taxa         []lineage.Taxon `json:"taxa,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// Common is the outcome of the last common node search.
type Common struct {
	Queries []string       `json:"queries"`
	Found   bool           `json:"found"`
	Taxon   *lineage.Taxon `json:"taxon,omitempty"`
	Skipped string         `json:"skipped,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// NewOutput converts a batch result.
func NewOutput(res lineage.Result) Output {
	out := Output{
		Short:   res.Options.Short,
		Queries: make([]Query, len(res.Reports)),
	}
	for i, v := range res.Reports {
		q := Query{
			Query:        v.Query,
			NameStringID: v.NameStringID,
			Found:        v.Found(),
		}
		if v.Found() {
			q.Lineage = v.Lineage.String()
			q.Taxa = v.Lineage.Taxa
			if t, ok := v.Lineage.Deepest(); ok {
				q.TaxID = t.TaxID
				q.Rank = t.Rank
			}
		} else {
			q.Error = ErrorText(v)
		}
		out.Queries[i] = q
	}

	if !res.Common.Requested {
		return out
	}
	c := &Common{
		Queries: res.Queries(),
		Found:   res.Common.Found(),
		Skipped: res.Common.Skipped,
	}
	if c.Found {
		t := res.Common.Taxon
		c.Taxon = &t
	}
	if res.Common.Err != nil {
		c.Error = message(res.Common.Err)
	}
	out.Common = c
	return out
}

// ErrorText explains why a query has no lineage.
func ErrorText(r lineage.Report) string {
	if r.NotFound() {
		return fmt.Sprintf(NotFoundMsg, r.Query)
	}
	return message(r.Err)
}

var tagRe = regexp.MustCompile(`</?[a-z]+>`)

// message returns user-facing text of an error without markup.
func message(err error) string {
	if err == nil {
		return ""
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Msg != "" {
		msg := fmt.Sprintf(gnErr.Msg, gnErr.Vars...)
		return tagRe.ReplaceAllString(msg, "")
	}
	return err.Error()
}
