package layout

import "errors"

// Sentinel errors for layout operations.
var (
	ErrNoMeasurer   = errors.New("layout requires a text measurer")
	ErrPageTooSmall = errors.New("page too small for any content")
)
