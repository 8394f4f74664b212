package iavl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// walkInvariants checks BST order, AVL balance, height/size consistency,
// and hash-cache consistency over every inner node of the subtree rooted
// at n, failing t if any are violated.
func walkInvariants(t *testing.T, n *node) (minKey, maxKey []byte, height int8, size uint32) {
	t.Helper()

	if n.isLeaf() {
		assert.EqualValues(t, 0, n.height)
		assert.EqualValues(t, 1, n.size)
		return n.key, n.key, n.height, n.size
	}

	leftMin, leftMax, leftHeight, leftSize := walkInvariants(t, n.getLeftNode())
	rightMin, rightMax, rightHeight, rightSize := walkInvariants(t, n.getRightNode())

	// BST order (item 1): every left-subtree key < routing key <= every
	// right-subtree key.
	assert.True(t, bytes.Compare(leftMax, n.key) < 0, "left max %x must be < routing key %x", leftMax, n.key)
	assert.True(t, bytes.Compare(rightMin, n.key) >= 0, "right min %x must be >= routing key %x", rightMin, n.key)

	// AVL balance (item 2).
	balance := int(leftHeight) - int(rightHeight)
	assert.True(t, balance >= -1 && balance <= 1, "balance factor %d out of range at key %x", balance, n.key)

	// Height/size consistency (item 3).
	wantHeight := leftHeight + 1
	if rightHeight > leftHeight {
		wantHeight = rightHeight + 1
	}
	assert.Equal(t, wantHeight, n.height)
	assert.Equal(t, leftSize+rightSize, n.size)

	// Hash-cache consistency (item 4).
	assert.Equal(t, n.getLeftNode().hash(), n.leftHash)
	assert.Equal(t, n.getRightNode().hash(), n.rightHash)

	return leftMin, rightMax, n.height, n.size
}

func assertTreeInvariants(t *testing.T, tr *Tree) {
	t.Helper()
	walkInvariants(t, tr.root)
}
