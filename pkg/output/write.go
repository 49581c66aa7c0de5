package output

import (
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/gnames/gnlineage/pkg/lineage"
)

var csvHeader = []string{
	"Kind", "Query", "NameStringID", "Found", "TaxID", "Rank", "Lineage",
	"Message",
}

// Write renders the result in the given format into w.
func Write(w io.Writer, res lineage.Result, f Format) error {
	s, err := Render(res, f)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// Render returns the result in the given format.
func Render(res lineage.Result, f Format) (string, error) {
	switch f {
	case Text:
		return text(res), nil
	case HTML:
		return htmlFragment(res), nil
	case CSV:
		return csv(res, ','), nil
	case TSV:
		return csv(res, '\t'), nil
	case CompactJSON, PrettyJSON:
		enc := gnfmt.GNjson{Pretty: f == PrettyJSON}
		bs, err := enc.Encode(NewOutput(res))
		if err != nil {
			return "", err
		}
		return string(bs) + "\n", nil
	default:
		return "", UnknownFormatError(f.String())
	}
}

// Header returns the first line of CSV or TSV output, other formats
// have no header.
func Header(f Format) string {
	switch f {
	case CSV:
		return gnfmt.ToCSV(csvHeader, ',') + "\n"
	case TSV:
		return gnfmt.ToCSV(csvHeader, '\t') + "\n"
	default:
		return ""
	}
}

func text(res lineage.Result) string {
	var sb strings.Builder
	for _, v := range res.Reports {
		if v.Found() {
			sb.WriteString("Lineage for query " + v.Query + ": ")
			sb.WriteString(v.Lineage.String())
		} else {
			sb.WriteString(ErrorText(v))
		}
		sb.WriteString("\n")
	}

	c := res.Common
	if !c.Requested {
		return sb.String()
	}
	switch {
	case c.Skipped != "":
		sb.WriteString(skipSentence(c.Skipped))
	case c.Err != nil:
		sb.WriteString(message(c.Err) + ".")
	default:
		sb.WriteString("The last common node between queries ")
		sb.WriteString(strings.Join(res.Queries(), ","))
		sb.WriteString(" is: " + c.Taxon.Name + ".")
	}
	sb.WriteString("\n")
	return sb.String()
}

func htmlFragment(res lineage.Result) string {
	var sb strings.Builder
	for _, v := range res.Reports {
		q := "<i>" + html.EscapeString(v.Query) + "</i>"
		switch {
		case v.NotFound():
			sb.WriteString(strings.Replace(NotFoundMsg, "%s", q, 1))
		case v.Found():
			sb.WriteString("The lineage for query " + q + " is: ")
			sb.WriteString(html.EscapeString(v.Lineage.String()))
			sb.WriteString("</br></br>")
		default:
			sb.WriteString(html.EscapeString(message(v.Err)))
			sb.WriteString("</br></br>")
		}
	}

	c := res.Common
	if !c.Requested {
		return sb.String()
	}
	sb.WriteString("</br>")
	switch {
	case c.Skipped != "":
		sb.WriteString(html.EscapeString(skipSentence(c.Skipped)))
	case c.Err != nil:
		sb.WriteString(html.EscapeString(message(c.Err)) + ".")
	default:
		qs := html.EscapeString(strings.Join(res.Queries(), ","))
		sb.WriteString("The last common node between queries <i>" + qs +
			"</i> is: " + html.EscapeString(c.Taxon.Name) + ".")
	}
	return sb.String()
}

func csv(res lineage.Result, sep rune) string {
	var sb strings.Builder
	for _, v := range res.Reports {
		row := []string{
			"lineage", v.Query, v.NameStringID, strconv.FormatBool(v.Found()),
			"", "", "", "",
		}
		if t, ok := v.Lineage.Deepest(); ok && v.Found() {
			row[4], row[5] = t.TaxID, t.Rank
		}
		if v.Found() {
			row[6] = strings.Join(v.Lineage.Names(), "|")
		} else {
			row[7] = ErrorText(v)
		}
		sb.WriteString(gnfmt.ToCSV(row, sep) + "\n")
	}

	c := res.Common
	if !c.Requested {
		return sb.String()
	}
	row := []string{
		"common", strings.Join(res.Queries(), "|"), "",
		strconv.FormatBool(c.Found()), "", "", "", "",
	}
	switch {
	case c.Skipped != "":
		row[7] = c.Skipped
	case c.Err != nil:
		row[7] = message(c.Err)
	default:
		row[4], row[5], row[6] = c.Taxon.TaxID, c.Taxon.Rank, c.Taxon.Name
	}
	sb.WriteString(gnfmt.ToCSV(row, sep) + "\n")
	return sb.String()
}

func skipSentence(skipped string) string {
	switch skipped {
	case lineage.SkipSingle:
		return "Cannot determine last node for a single query."
	default:
		return "No last node has been searched for, as " + skipped + "."
	}
}
