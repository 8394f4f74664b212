package iavl

import "bytes"

// node is a single node of an IAVL+ tree. A node is a leaf when height == 0
// and an inner node otherwise; the two variants share this struct rather
// than separate Go types, since nothing in the mutation or hashing logic
// below needs a type switch.
type node struct {
	key     []byte
	value   []byte // leaf only
	version uint32

	height int8
	size   uint32

	leftHash  []byte
	leftNode  *node
	rightHash []byte
	rightNode *node

	cachedHash []byte // set by hash(), cleared whenever a descendant changes
}

// newLeafNode builds a single leaf holding key/value at the given version.
func newLeafNode(key, value []byte, version uint32) *node {
	return &node{
		key:     key,
		value:   value,
		version: version,
		height:  0,
		size:    1,
	}
}

func (n *node) isLeaf() bool {
	return n.height == 0
}

// clone returns a shallow copy of an inner node with its cached hash
// cleared, ready to be mutated in place by the caller. Refuses to copy
// leaves for the same reason a leaf is never split in place: it is always
// replaced wholesale.
func (n *node) clone(version uint32) *node {
	if n.isLeaf() {
		panicSanity("cannot clone a leaf node")
	}
	return &node{
		key:        n.key,
		height:     n.height,
		size:       n.size,
		version:    version,
		leftHash:   n.leftHash,
		leftNode:   n.leftNode,
		rightHash:  n.rightHash,
		rightNode:  n.rightNode,
		cachedHash: nil,
	}
}

// getLeft/getRight exist so the mutation code never has to special-case a
// node whose child is only known by hash (an embedder restoring from
// storage would fill that in; the in-memory core here always has both
// children resident since persistence is out of scope, but keeping the
// indirection keeps node.go ignorant of how a child came to be in memory).
func (n *node) getLeftNode() *node {
	return n.leftNode
}

func (n *node) getRightNode() *node {
	return n.rightNode
}

// has reports whether key is present in the subtree rooted at n.
func (n *node) has(key []byte) bool {
	if n.isLeaf() {
		return bytes.Equal(n.key, key)
	}
	if bytes.Compare(key, n.key) < 0 {
		return n.getLeftNode().has(key)
	}
	return n.getRightNode().has(key)
}

// get returns the value bound to key in the subtree rooted at n, if any.
func (n *node) get(key []byte) (value []byte, found bool) {
	if n.isLeaf() {
		if bytes.Equal(n.key, key) {
			return n.value, true
		}
		return nil, false
	}
	if bytes.Compare(key, n.key) < 0 {
		return n.getLeftNode().get(key)
	}
	return n.getRightNode().get(key)
}

// calcHeightAndSize recomputes n's height and size from its current
// children. Must run after either child has been replaced.
func (n *node) calcHeightAndSize() {
	lh, rh := n.getLeftNode().height, n.getRightNode().height
	if lh > rh {
		n.height = lh + 1
	} else {
		n.height = rh + 1
	}
	n.size = n.getLeftNode().size + n.getRightNode().size
}

// calcBalance returns height(left) - height(right).
func (n *node) calcBalance() int {
	return int(n.getLeftNode().height) - int(n.getRightNode().height)
}
