package runtime

import (
	"fmt"

	"github.com/defuse-protocol/defuse-core/token"
)

// InvariantViolatedError carries the leftover per-token deltas that
// kept a batch from clearing. It lives here rather than in defuseerr
// so that package can stay free of a dependency on token.
type InvariantViolatedError struct {
	UnmatchedDeltas map[token.ID]token.Delta
}

func (e *InvariantViolatedError) Error() string {
	return fmt.Sprintf("invariant violated: %d token(s) did not net to zero", len(e.UnmatchedDeltas))
}
