package playback

import "errors"

// Contract violations raised by the cursor and the sequence controller.
var (
	// ErrOutOfRange is returned by Next/Previous when the cursor would leave the list.
	ErrOutOfRange = errors.New("cursor out of range")
	// ErrInvalidIndex is returned when a direct jump targets an index outside [0, count).
	ErrInvalidIndex = errors.New("invalid story index")
	// ErrInvalidCount is returned by SetUp for a negative story count.
	ErrInvalidCount = errors.New("invalid story count")
	// ErrInvalidDuration is returned by SetUp for a non-positive story duration.
	ErrInvalidDuration = errors.New("invalid story duration")
	// ErrMalformedStyling is returned when a Styling blob cannot be decoded.
	ErrMalformedStyling = errors.New("malformed styling")
)
