package tmdb

import "errors"

// ErrExternalService covers non-success responses and bodies the service
// returns that cannot be decoded. Nothing in this package retries.
var ErrExternalService = errors.New("metadata service error")

// ErrMissingField is returned when a details response lacks a key the
// materialize step requires. The wrapping error names the field.
var ErrMissingField = errors.New("missing field in metadata response")

// ErrBadReleaseDate is returned when release_date cannot yield a year, i.e.
// it has no "-" or the leading segment is not a number.
var ErrBadReleaseDate = errors.New("unparseable release_date")
