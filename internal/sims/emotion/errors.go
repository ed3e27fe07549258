package emotion

import "errors"

var (
	// ErrInvalidEmotionKind reports a kind or name outside the catalog.
	ErrInvalidEmotionKind = errors.New("invalid emotion kind")
	// ErrInvalidGridSize reports non-positive grid dimensions.
	ErrInvalidGridSize = errors.New("invalid grid size")
	// ErrInvalidZone reports an unusable zone table or partition.
	ErrInvalidZone = errors.New("invalid zone")
	// ErrInvalidParams reports rule parameters outside their ranges.
	ErrInvalidParams = errors.New("invalid rule parameters")
)
