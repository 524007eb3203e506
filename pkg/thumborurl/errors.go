package thumborurl

import "errors"

// Builder errors
var (
	// ErrEmptyImagePath is returned by URL when no image path was set
	ErrEmptyImagePath = errors.New("thumborurl: image path is empty")
)
