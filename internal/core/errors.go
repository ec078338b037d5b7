package core

import "errors"

var (
	// ErrInvalidConfiguration reports an unusable board geometry, margin
	// set, or trim cadence. The run cannot start.
	ErrInvalidConfiguration = errors.New("invalid grid configuration")

	// ErrInvalidPlacement reports an unsupported seed placement mode.
	ErrInvalidPlacement = errors.New("invalid seed placement")
)
