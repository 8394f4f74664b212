package iavl

import (
	"bytes"

	"github.com/pkg/errors"
)

// set recursively descends to key's position, replaces or splits the leaf
// found there, and on the way back up refreshes each ancestor's
// height/size/child-hash cache and rebalances. Every node returned here is
// freshly allocated or reused unchanged by reference — never mutated in
// place on a node that the caller's old tree still points to, which is what
// lets the hash cache stay locally consistent without shared-pointer
// bookkeeping.
func (n *node) set(t *Tree, key, value []byte) *node {
	if n.isLeaf() {
		switch bytes.Compare(key, n.key) {
		case -1:
			left := newLeafNode(key, value, t.version)
			return &node{
				key:       n.key,
				height:    1,
				size:      2,
				version:   t.version,
				leftNode:  left,
				leftHash:  left.hash(),
				rightNode: n,
				rightHash: n.hash(),
			}
		case 1:
			right := newLeafNode(key, value, t.version)
			return &node{
				key:       key,
				height:    1,
				size:      2,
				version:   t.version,
				leftNode:  n,
				leftHash:  n.hash(),
				rightNode: right,
				rightHash: right.hash(),
			}
		default:
			return newLeafNode(key, value, t.version)
		}
	}

	next := n.clone(t.version)
	if bytes.Compare(key, next.key) < 0 {
		next.leftNode = next.getLeftNode().set(t, key, value)
		next.leftHash = next.leftNode.hash()
	} else {
		next.rightNode = next.getRightNode().set(t, key, value)
		next.rightHash = next.rightNode.hash()
	}
	next.calcHeightAndSize()
	return next.balance(t, key)
}

// balance applies the four rotation cases. key is the key that was just
// inserted/updated below n; it is what distinguishes the single-rotation
// case from the double-rotation case.
func (n *node) balance(t *Tree, key []byte) *node {
	bal := n.calcBalance()

	if bal > 1 {
		left := n.getLeftNode()
		if left.isLeaf() {
			panicSanity("balance > 1 but left child is a leaf")
		}
		if bytes.Compare(key, left.key) < 0 {
			t.logRotation("LL", n.key)
			return n.rotateRight(t)
		}
		t.logRotation("LR", n.key)
		n.leftNode = left.rotateLeft(t)
		n.leftHash = n.leftNode.hash()
		return n.rotateRight(t)
	}

	if bal < -1 {
		right := n.getRightNode()
		if right.isLeaf() {
			panicSanity("balance < -1 but right child is a leaf")
		}
		if bytes.Compare(key, right.key) > 0 {
			t.logRotation("RR", n.key)
			return n.rotateLeft(t)
		}
		t.logRotation("RL", n.key)
		n.rightNode = right.rotateRight(t)
		n.rightHash = n.rightNode.hash()
		return n.rotateLeft(t)
	}

	return n
}

// rotateRight performs a right rotation: z (n) comes down, its left child y
// comes up to take its place.
func (n *node) rotateRight(t *Tree) *node {
	y, err := doRotateRight(n, t.version)
	if err != nil {
		// Unreachable from Set: every call site above has already
		// checked the pivot is an inner node. Surfaced as a logic
		// bug rather than silently producing a corrupt tree.
		panicSanity(errors.Wrap(err, "rotateRight"))
	}
	return y
}

// rotateLeft is the mirror image of rotateRight.
func (n *node) rotateLeft(t *Tree) *node {
	y, err := doRotateLeft(n, t.version)
	if err != nil {
		panicSanity(errors.Wrap(err, "rotateLeft"))
	}
	return y
}

// doRotateRight and doRotateLeft are the typed-error rotation primitives,
// kept separate from the balance()-facing wrappers above (which collapse
// the error into an assertion) so they stay reusable outside the
// balanced-update context, e.g. from tests.
func doRotateRight(z *node, version uint32) (*node, error) {
	y := z.getLeftNode()
	if y.isLeaf() {
		return nil, errors.Wrap(ErrRotateLeafPivot, "left child of rotation pivot is a leaf")
	}

	z.leftNode, z.leftHash = y.rightNode, y.rightHash
	z.cachedHash = nil
	z.version = version
	z.calcHeightAndSize()

	y.rightNode = z
	y.rightHash = z.hash()
	y.cachedHash = nil
	y.version = version
	y.calcHeightAndSize()

	return y, nil
}

func doRotateLeft(z *node, version uint32) (*node, error) {
	y := z.getRightNode()
	if y.isLeaf() {
		return nil, errors.Wrap(ErrRotateLeafPivot, "right child of rotation pivot is a leaf")
	}

	z.rightNode, z.rightHash = y.leftNode, y.leftHash
	z.cachedHash = nil
	z.version = version
	z.calcHeightAndSize()

	y.leftNode = z
	y.leftHash = z.hash()
	y.cachedHash = nil
	y.version = version
	y.calcHeightAndSize()

	return y, nil
}
