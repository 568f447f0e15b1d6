package interval

import "github.com/pkg/errors"

// Errors returned by this package.  All of them are contract violations
// reported synchronously to the immediate caller; none are transient, and
// no operation retries or recovers internally.  Raise sites wrap these
// sentinels with context via errors.Wrapf, so identity must be tested with
// errors.Is (or errors.Cause), not direct comparison.
var (
	// ErrInvalidInterval is returned by New when stop precedes start.
	ErrInvalidInterval = errors.New("invalid interval: stop must not precede start")
	// ErrDoNotOverlap is returned by Intersect and Merge when the two
	// intervals do not satisfy the Overlaps relation.
	ErrDoNotOverlap = errors.New("intervals do not overlap")
	// ErrNotContiguous is returned by Edges (and operations built on it)
	// when the sorted set is not contiguous.
	ErrNotContiguous = errors.New("intervals are not contiguous")
	// ErrLengthMismatch is returned by FromStartsAndStops when the two
	// sequences differ in length.
	ErrLengthMismatch = errors.New("starts and stops differ in length")
	// ErrParse is returned by Parse and FromStrings on a malformed token.
	ErrParse = errors.New("malformed interval token")
)
