package taxonomy

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnlineage/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree(t *testing.T) *Tree {
	t.Helper()
	path := filepath.Join("..", "..", "testdata", "ncbi", "nodes.dmp")
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	res, err := ReadNodes(context.Background(), f, path, "")
	require.NoError(t, err)
	return res
}

func TestReadNodes(t *testing.T) {
	tree := testTree(t)
	assert.Equal(t, 19, tree.Len())
	assert.Equal(t, "1", tree.RootID())

	parent, err := tree.ParentOf("9606")
	require.NoError(t, err)
	assert.Equal(t, "9605", parent)

	rank, err := tree.RankOf("9606")
	require.NoError(t, err)
	assert.Equal(t, "species", rank)

	hidden, err := tree.IsHidden("314295")
	require.NoError(t, err)
	assert.True(t, hidden)

	hidden, err = tree.IsHidden("9604")
	require.NoError(t, err)
	assert.False(t, hidden)

	_, err = tree.ParentOf("42")
	assert.True(t, errcode.Is(err, errcode.UnknownNodeError))
	_, err = tree.RankOf("42")
	assert.True(t, errcode.Is(err, errcode.UnknownNodeError))
	_, err = tree.IsHidden("42")
	assert.True(t, errcode.Is(err, errcode.UnknownNodeError))
}

func TestReadNodesParseError(t *testing.T) {
	data := "9606\t|\t9605\t|\tspecies\t|\n"
	_, err := ReadNodes(context.Background(), strings.NewReader(data),
		"nodes.dmp", "1")
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.ParseError))
}

func TestReadNodesLastWins(t *testing.T) {
	rec := func(id, parent, rank, hidden string) string {
		f := []string{id, parent, rank, "", "0", "0", "0", "0", "0", "0",
			hidden, "0", ""}
		return strings.Join(f, FieldSep) + recordEnd + "\n"
	}
	data := rec("1", "1", "no rank", "0") +
		rec("5", "1", "genus", "0") +
		rec("5", "1", "subgenus", "1")

	tree, err := ReadNodes(context.Background(), strings.NewReader(data),
		"nodes.dmp", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())

	node, err := tree.Node("5")
	require.NoError(t, err)
	assert.Equal(t, "subgenus", node.Rank)
	assert.True(t, node.Hidden)
}

func TestPathToRoot(t *testing.T) {
	tree := testTree(t)

	tests := []struct {
		name string
		id   string
		want []string
	}{
		{
			name: "species",
			id:   "9606",
			want: []string{"131567", "2759", "33154", "33208", "7711",
				"40674", "9443", "314295", "9604", "9605", "9606"},
		},
		{
			name: "bacteria",
			id:   "562",
			want: []string{"131567", "2", "1224", "1236", "561", "562"},
		},
		{
			name: "child of root",
			id:   "131567",
			want: []string{"131567"},
		},
		{
			name: "whitespace in ID",
			id:   " 9605 ",
			want: []string{"131567", "2759", "33154", "33208", "7711",
				"40674", "9443", "314295", "9604", "9605"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, err := tree.PathToRoot(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
		})
	}

	t.Run("root has empty path", func(t *testing.T) {
		path, err := tree.PathToRoot("1")
		require.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("every node terminates at its own ID", func(t *testing.T) {
		for id := range tree.nodes {
			path, err := tree.PathToRoot(id)
			require.NoError(t, err, id)
			if id == tree.RootID() {
				continue
			}
			require.NotEmpty(t, path, id)
			assert.Equal(t, id, path[len(path)-1])
		}
	})

	t.Run("unknown node", func(t *testing.T) {
		_, err := tree.PathToRoot("999")
		assert.True(t, errcode.Is(err, errcode.UnknownNodeError))
	})
}

func TestPathToRootDanglingParent(t *testing.T) {
	tree := NewTree([]Node{
		{TaxID: "1", ParentID: "1"},
		{TaxID: "2", ParentID: "1"},
		{TaxID: "3", ParentID: "77"},
		{TaxID: "4", ParentID: "3"},
	}, "1")

	path, err := tree.PathToRoot("4")
	require.Error(t, err)
	assert.Nil(t, path, "no partial path")
	assert.True(t, errcode.Is(err, errcode.UnknownNodeError))
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Contains(t, gnErr.Err.Error(), "dangling")
	assert.Equal(t, []any{"77", "3"}, gnErr.Vars)
}

func TestPathToRootCycle(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		id    string
	}{
		{
			name: "three node cycle",
			nodes: []Node{
				{TaxID: "1", ParentID: "1"},
				{TaxID: "2", ParentID: "4"},
				{TaxID: "3", ParentID: "2"},
				{TaxID: "4", ParentID: "3"},
			},
			id: "3",
		},
		{
			name: "self parent below root",
			nodes: []Node{
				{TaxID: "1", ParentID: "1"},
				{TaxID: "2", ParentID: "2"},
			},
			id: "2",
		},
		{
			name: "no root at all",
			nodes: []Node{
				{TaxID: "5", ParentID: "6"},
				{TaxID: "6", ParentID: "5"},
			},
			id: "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewTree(tt.nodes, "1")
			path, err := tree.PathToRoot(tt.id)
			require.Error(t, err)
			assert.Nil(t, path)
			assert.True(t, errcode.Is(err, errcode.CycleError))
		})
	}
}

func TestNewTreeCustomRoot(t *testing.T) {
	tree := NewTree([]Node{
		{TaxID: "A", ParentID: "A"},
		{TaxID: "B", ParentID: "A"},
		{TaxID: "C", ParentID: "B"},
	}, "A")

	path, err := tree.PathToRoot("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, path)
}
