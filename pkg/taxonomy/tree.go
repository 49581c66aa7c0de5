package taxonomy

import (
	"context"
	"io"
	"slices"
	"strings"
)

const (
	// nodesMinFields is the minimal number of fields in a nodes.dmp record.
	nodesMinFields = 11

	// hiddenField is the position of the GenBank hidden flag.
	hiddenField = 10

	// DefaultRootID is the self-parented root of NCBI taxonomy.
	DefaultRootID = "1"
)

// Node is one taxon of the taxonomy tree.
type Node struct {
	TaxID    string
	ParentID string
	Rank     string
	// Hidden nodes are omitted from short lineages.
	Hidden bool
}

// Tree is a parent-pointer taxonomy tree.
type Tree struct {
	nodes  map[string]Node
	rootID string
}

// NewTree builds Tree from already parsed nodes. When IDs repeat, the
// last node wins. Empty rootID means DefaultRootID.
func NewTree(nodes []Node, rootID string) *Tree {
	res := newTree(rootID)
	for _, v := range nodes {
		res.nodes[v.TaxID] = v
	}
	return res
}

// ReadNodes builds Tree from nodes.dmp content. The source is used in
// error messages. Empty rootID means DefaultRootID.
func ReadNodes(
	ctx context.Context,
	r io.Reader,
	source string,
	rootID string,
) (*Tree, error) {
	res := newTree(rootID)
	err := scanRecords(ctx, r, source, nodesMinFields,
		func(fields []string) {
			node := Node{
				TaxID:    fields[0],
				ParentID: fields[1],
				Rank:     fields[2],
				Hidden:   fields[hiddenField] == "1",
			}
			res.nodes[node.TaxID] = node
		},
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func newTree(rootID string) *Tree {
	rootID = strings.TrimSpace(rootID)
	if rootID == "" {
		rootID = DefaultRootID
	}
	return &Tree{nodes: make(map[string]Node), rootID: rootID}
}

// RootID returns the identifier of the root sentinel.
func (t *Tree) RootID() string {
	return t.rootID
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Has reports whether the tree contains the ID.
func (t *Tree) Has(id string) bool {
	_, ok := t.nodes[id]
	return ok
}

// Node returns the node with the given ID.
func (t *Tree) Node(id string) (Node, error) {
	if node, ok := t.nodes[id]; ok {
		return node, nil
	}
	return Node{}, UnknownNodeError(id, "")
}

// ParentOf returns the parent ID of a node.
func (t *Tree) ParentOf(id string) (string, error) {
	node, err := t.Node(id)
	return node.ParentID, err
}

// RankOf returns the rank of a node.
func (t *Tree) RankOf(id string) (string, error) {
	node, err := t.Node(id)
	return node.Rank, err
}

// IsHidden reports whether a node is flagged as hidden.
func (t *Tree) IsHidden(id string) (bool, error) {
	node, err := t.Node(id)
	return node.Hidden, err
}

// PathToRoot returns IDs from the top of the tree down to the given
// node. The root sentinel is not included, the node itself is the last
// element. For the root itself the path is empty.
//
// The walk takes at most Len()+1 steps. A longer walk means the parent
// pointers form a cycle, and CycleError is returned. A parent that is
// not in the tree gives UnknownNodeError. No partial paths are returned.
func (t *Tree) PathToRoot(id string) ([]string, error) {
	id = strings.TrimSpace(id)
	if !t.Has(id) {
		return nil, UnknownNodeError(id, "")
	}

	var path []string
	limit := len(t.nodes) + 1
	currID, childID := id, ""
	for range limit {
		if currID == t.rootID {
			slices.Reverse(path)
			return path, nil
		}

		node, ok := t.nodes[currID]
		if !ok {
			return nil, UnknownNodeError(currID, childID)
		}
		path = append(path, currID)
		currID, childID = node.ParentID, currID
	}
	return nil, CycleError(id, limit)
}
