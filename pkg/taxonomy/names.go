package taxonomy

import (
	"context"
	"io"
	"strings"
)

// namesMinFields is the minimal number of fields in a names.dmp record.
const namesMinFields = 4

// scientificPrefix marks name records that provide display names.
const scientificPrefix = "scientific name"

// NameClass is a category of a name record.
type NameClass int

const (
	OtherName NameClass = iota
	ScientificName
	SynonymName
	CommonName
)

// NewNameClass converts the name-class field of a names.dmp record
// to NameClass.
func NewNameClass(s string) NameClass {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, scientificPrefix):
		return ScientificName
	case s == "synonym":
		return SynonymName
	case strings.HasSuffix(s, "common name"):
		return CommonName
	default:
		return OtherName
	}
}

// String implements fmt.Stringer.
func (nc NameClass) String() string {
	switch nc {
	case ScientificName:
		return "scientific"
	case SynonymName:
		return "synonym"
	case CommonName:
		return "common"
	default:
		return "other"
	}
}

// NameRecord is one line of names.dmp.
type NameRecord struct {
	TaxID      string
	Name       string
	UniqueName string
	Class      NameClass
}

// NameIndex resolves free-text queries to taxon IDs and taxon IDs
// to scientific names.
type NameIndex struct {
	// byName maps a normalized name of any class to a taxon ID.
	byName map[string]string
	// sciNames maps a taxon ID to its scientific name.
	sciNames map[string]string
	// records is the number of name records seen.
	records int
}

// NewNameIndex builds NameIndex from already parsed records.
// When several records share a name, the last one wins.
func NewNameIndex(recs []NameRecord) *NameIndex {
	res := newNameIndex()
	for _, v := range recs {
		res.add(v)
	}
	return res
}

// ReadNames builds NameIndex from names.dmp content. The source is
// used in error messages.
func ReadNames(
	ctx context.Context,
	r io.Reader,
	source string,
) (*NameIndex, error) {
	res := newNameIndex()
	err := scanRecords(ctx, r, source, namesMinFields,
		func(fields []string) {
			res.add(NameRecord{
				TaxID:      fields[0],
				Name:       fields[1],
				UniqueName: fields[2],
				Class:      NewNameClass(fields[3]),
			})
		},
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func newNameIndex() *NameIndex {
	return &NameIndex{
		byName:   make(map[string]string),
		sciNames: make(map[string]string),
	}
}

func (ni *NameIndex) add(rec NameRecord) {
	ni.records++
	if key := normalize(rec.Name); key != "" {
		ni.byName[key] = rec.TaxID
	}
	if rec.Class == ScientificName {
		ni.sciNames[rec.TaxID] = rec.Name
	}
}

// Resolve finds the taxon ID of a name of any class. Matching ignores
// case and surrounding whitespace and requires the whole name to match.
func (ni *NameIndex) Resolve(query string) (string, error) {
	if id, ok := ni.byName[normalize(query)]; ok {
		return id, nil
	}
	return "", NotFoundError(strings.TrimSpace(query))
}

// DisplayName returns the scientific name of a taxon ID.
func (ni *NameIndex) DisplayName(id string) (string, error) {
	if name, ok := ni.sciNames[id]; ok {
		return name, nil
	}
	return "", MissingNameError(id)
}

// Len returns the number of name records that were indexed.
func (ni *NameIndex) Len() int {
	return ni.records
}

// ScientificLen returns the number of taxon IDs with a scientific name.
func (ni *NameIndex) ScientificLen() int {
	return len(ni.sciNames)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
