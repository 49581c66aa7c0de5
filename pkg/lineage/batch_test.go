package lineage_test

import (
	"testing"

	"github.com/gnames/gnlineage/internal/iotesting"
	"github.com/gnames/gnlineage/pkg/errcode"
	"github.com/gnames/gnlineage/pkg/lineage"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch(t *testing.T) {
	r := iotesting.Resolver(t)
	qs := []string{" Homo sapiens ", "Pan troglodytes"}

	res := lineage.Batch(r, qs, lineage.Options{WithCommon: true})
	assert.Equal(t, []string{"Homo sapiens", "Pan troglodytes"}, res.Queries())
	require.Len(t, res.Reports, 2)
	for _, v := range res.Reports {
		assert.True(t, v.Found())
		assert.False(t, v.NotFound())
		assert.Equal(t, gnuuid.New(v.Query).String(), v.NameStringID)
	}
	assert.Equal(t, humanFull, res.Reports[0].Lineage.Names())

	assert.True(t, res.Common.Found())
	assert.Empty(t, res.Common.Skipped)
	assert.Equal(t, "Hominidae", res.Common.Taxon.Name)
}

func TestBatchNotFoundIsolated(t *testing.T) {
	r := iotesting.Resolver(t)
	qs := []string{"Homo sapiens", "Xyzzyplasm", "Pan troglodytes"}

	res := lineage.Batch(r, qs, lineage.Options{Short: true, WithCommon: true})
	require.Len(t, res.Reports, 3)
	assert.Equal(t, humanShort, res.Reports[0].Lineage.Names())
	assert.True(t, res.Reports[1].NotFound())
	assert.True(t, res.Reports[2].Found())

	assert.True(t, res.Common.Requested)
	assert.False(t, res.Common.Found())
	assert.Equal(t, lineage.SkipNotFound, res.Common.Skipped)
}

func TestBatchSkipReasons(t *testing.T) {
	r := iotesting.Resolver(t)

	tests := []struct {
		name    string
		queries []string
		opts    lineage.Options
		skipped string
	}{
		{"single", []string{"Homo"}, lineage.Options{WithCommon: true},
			lineage.SkipSingle},
		{"empty", nil, lineage.Options{WithCommon: true}, lineage.SkipEmpty},
		{"not found wins over single", []string{"Nothing"},
			lineage.Options{WithCommon: true}, lineage.SkipNotFound},
		{"not requested", []string{"Homo"}, lineage.Options{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := lineage.Batch(r, tt.queries, tt.opts)
			assert.Equal(t, tt.opts.WithCommon, res.Common.Requested)
			assert.Equal(t, tt.skipped, res.Common.Skipped)
			assert.False(t, res.Common.Found())
		})
	}
}

func TestBatchNoCommonAncestor(t *testing.T) {
	r := iotesting.Resolver(t)
	qs := []string{"Homo sapiens", "Escherichia coli"}

	res := lineage.Batch(r, qs, lineage.Options{Short: true, WithCommon: true})
	assert.Empty(t, res.Common.Skipped)
	assert.False(t, res.Common.Found())
	assert.True(t, errcode.Is(res.Common.Err, errcode.NoCommonAncestorError))
}

func TestSplitQueries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blanks", " , ,", nil},
		{"one", "Homo sapiens", []string{"Homo sapiens"}},
		{"several", "Homo sapiens, Pan troglodytes,,human ",
			[]string{"Homo sapiens", "Pan troglodytes", "human"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lineage.SplitQueries(tt.in))
		})
	}
}
