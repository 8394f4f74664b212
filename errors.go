package iavl

import (
	"fmt"

	"github.com/pkg/errors"
	cmn "github.com/tendermint/tmlibs/common"
)

// ErrRotateLeafPivot is returned by rotateLeft/rotateRight when the node
// being rotated into the new root position is a leaf. Every call site
// inside balance() is reached only after a height check guarantees the
// pivot is an inner node, so this error is unreachable from Set — it is
// kept on the rotation primitives themselves (rather than turned into a
// panic) so they stay usable from tests and other callers that don't carry
// that guarantee.
var ErrRotateLeafPivot = errors.New("iavl: cannot rotate around a leaf node")

// panicSanity reports a violated structural invariant (balance indicates
// an inner child but a leaf was found): a logic bug, not a recoverable
// error, and the tree state after it fires is not guaranteed usable.
func panicSanity(v interface{}) {
	cmn.PanicSanity(fmt.Sprintf("%v", v))
}
