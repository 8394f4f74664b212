package iavl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// doRotateRight/doRotateLeft are kept reusable outside the balanced-update
// context precisely so this case is testable: rotating around a node whose
// pivot child is a leaf must return ErrRotateLeafPivot rather than panic or
// corrupt state.
func TestRotatePrimitivesRejectLeafPivot(t *testing.T) {
	leaf := newLeafNode([]byte("a"), []byte("1"), 1)
	parent := &node{
		key:      []byte("a"),
		height:   1,
		size:     2,
		version:  1,
		leftNode: leaf,
		rightNode: &node{
			key:      []byte("b"),
			height:   1,
			size:     2,
			version:  1,
			leftNode: newLeafNode([]byte("a"), []byte("1"), 1),
			rightNode: newLeafNode([]byte("b"), []byte("2"), 1),
		},
	}
	parent.leftHash = parent.getLeftNode().hash()
	parent.rightHash = parent.getRightNode().hash()

	_, err := doRotateRight(parent, 1)
	assert.True(t, errors.Cause(err) == ErrRotateLeafPivot)
}

func TestNodeHasAndGet(t *testing.T) {
	tr := New([]byte("m"), []byte("1"))
	tr = tr.Set([]byte("a"), []byte("2"))
	tr = tr.Set([]byte("z"), []byte("3"))

	assert.True(t, tr.Has([]byte("m")))
	assert.True(t, tr.Has([]byte("a")))
	assert.True(t, tr.Has([]byte("z")))
	assert.False(t, tr.Has([]byte("missing")))

	v, ok := tr.Get([]byte("a"))
	assert.True(t, ok)
	assert.Equal(t, []byte("2"), v)

	_, ok = tr.Get([]byte("missing"))
	assert.False(t, ok)
}
