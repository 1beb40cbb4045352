package converter

import "github.com/pkg/errors"

// Error kinds surfaced by skeleton and animation conversion. Callers
// classify with errors.Is; the wrapped message carries the specifics.
var (
	ErrTooManyBones         = errors.New("too many bones")
	ErrDataMismatch         = errors.New("inconsistent skinning data")
	ErrUnsupportedTransform = errors.New("unsupported bind transform")
)
