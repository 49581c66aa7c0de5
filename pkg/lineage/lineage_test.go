package lineage_test

import (
	"testing"

	"github.com/gnames/gnlineage/internal/iotesting"
	"github.com/gnames/gnlineage/pkg/errcode"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnlineage/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	humanFull = []string{
		"cellular organisms", "Eukaryota", "Opisthokonta", "Metazoa",
		"Chordata", "Mammalia", "Primates", "Hominoidea", "Hominidae",
		"Homo", "Homo sapiens",
	}
	humanShort = []string{
		"Eukaryota", "Metazoa", "Chordata", "Mammalia", "Primates",
		"Hominidae", "Homo", "Homo sapiens",
	}
)

func TestFind(t *testing.T) {
	r := iotesting.Resolver(t)

	tests := []struct {
		name  string
		query string
		short bool
		want  []string
	}{
		{"full", "Homo sapiens", false, humanFull},
		{"case insensitive", "homo sapiens", false, humanFull},
		{"common name", " Human ", false, humanFull},
		{"short", "Homo sapiens", true, humanShort},
		{"bacteria", "Escherichia coli", false, []string{
			"cellular organisms", "Bacteria", "Pseudomonadota",
			"Gammaproteobacteria", "Escherichia", "Escherichia coli",
		}},
		{"root gives empty lineage", "root", false, []string{}},
		{"hidden only lineage is empty", "cellular organisms", true, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lin, err := r.Find(tt.query, tt.short)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lin.Names())
			assert.Equal(t, tt.short, lin.Short)
		})
	}
}

func TestFindRendering(t *testing.T) {
	r := iotesting.Resolver(t)

	lin, err := r.Find("homo sapiens", false)
	require.NoError(t, err)
	str := lin.String()
	assert.Equal(t,
		"cellular organisms, Eukaryota, Opisthokonta, Metazoa, Chordata, "+
			"Mammalia, Primates, Hominoidea, Hominidae, Homo, Homo sapiens.",
		str)

	again, err := r.Find("homo sapiens", false)
	require.NoError(t, err)
	assert.Equal(t, str, again.String(), "resolution is repeatable")

	deepest, ok := lin.Deepest()
	require.True(t, ok)
	assert.Equal(t, lineage.Taxon{TaxID: "9606", Name: "Homo sapiens",
		Rank: "species"}, deepest)
	assert.Equal(t, "species", lin.Ranks()[lin.Len()-1])
	assert.Equal(t, "131567", lin.IDs()[0])
}

func TestFindShortIsSubsequence(t *testing.T) {
	r := iotesting.Resolver(t)

	for _, q := range []string{"Homo sapiens", "Pan troglodytes",
		"Escherichia coli", "Hominoidea", "Eukaryota"} {
		full, err := r.Find(q, false)
		require.NoError(t, err)
		short, err := r.Find(q, true)
		require.NoError(t, err)

		i := 0
		for _, v := range full.Taxa {
			if i < short.Len() && short.Taxa[i] == v {
				i++
			}
		}
		assert.Equal(t, short.Len(), i, q)
	}
}

func TestFindErrors(t *testing.T) {
	r := iotesting.Resolver(t)

	_, err := r.Find("Xyzzyplasm", false)
	assert.True(t, errcode.Is(err, errcode.NotFoundError))

	_, err = r.FindByID("424242", false)
	assert.True(t, errcode.Is(err, errcode.UnknownNodeError))
}

func TestFindMissingName(t *testing.T) {
	names := taxonomy.NewNameIndex([]taxonomy.NameRecord{
		{TaxID: "3", Name: "Aus bus", Class: taxonomy.ScientificName},
		{TaxID: "2", Name: "Aus", Class: taxonomy.SynonymName},
	})
	tree := taxonomy.NewTree([]taxonomy.Node{
		{TaxID: "1", ParentID: "1"},
		{TaxID: "2", ParentID: "1", Hidden: true},
		{TaxID: "3", ParentID: "2"},
	}, "1")
	r := lineage.NewResolver(names, tree)

	_, err := r.Find("Aus bus", false)
	assert.True(t, errcode.Is(err, errcode.MissingNameError))

	lin, err := r.Find("Aus bus", true)
	require.NoError(t, err, "hidden node does not need a name")
	assert.Equal(t, []string{"Aus bus"}, lin.Names())
}

func TestLineageString(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"Homo"}, "Homo."},
		{"several", []string{"A", "B", "C"}, "A, B, C."},
		{"name with period", []string{"Homo", "Homo sp."}, "Homo, Homo sp.."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lin lineage.Lineage
			for _, v := range tt.names {
				lin.Taxa = append(lin.Taxa, lineage.Taxon{Name: v})
			}
			assert.Equal(t, tt.want, lin.String())
			if len(tt.names) > 0 {
				assert.Equal(t, tt.names, lineage.ParseLineage(lin.String()))
			} else {
				assert.Nil(t, lineage.ParseLineage(lin.String()))
			}
		})
	}
}
